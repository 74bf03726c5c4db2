/*
Package frozenmap provides a build-once, read-mostly hash map and set
for byte-string keys (UTF-8 or arbitrary binary).

The key set is fixed at construction: there is no insertion, removal,
resizing or rehashing afterwards. In exchange, all keys are packed into
a single contiguous byte buffer and placed into a flat power-of-two
slot ring with linear probing, which keeps lookups cheap and the memory
layout compact.

	Table layout:
	+--------+--------+-------+--------+     +------------------------+
	| slot 0 | slot 1 |  ...  | slot n |     | key bytes, back-to-back |
	+--------+--------+-------+--------+     +------------------------+
	  each occupied slot holds {ptr, len}  ----^  into the shared buffer

Two adapters share the engine: Map stores one value per key and allows
replacing it in place, Set stores keys only. Construction fails on an
empty input or on duplicate key bytes; lookups never fail, an absent
key simply reports a miss.

The structure is not synchronized. After construction it is safe for
concurrent readers as long as no writer is mutating values through
GetPtr at the same time.
*/
package frozenmap
