// Package seqview - read-only views over Go slices and other random-access lists.
/*
Views compute their elements on demand from the underlying lists and never copy them:
Concat chains lists, Product addresses every combination of one element per axis by a
single ordinal, Coordinates enumerates the integer points of a box and Filter narrows an
iterator to the elements of a given type.

Views assume their sources do not change while the view is in use and are not safe for
concurrent mutation. Independent views over shared read-only sources may be used from
different goroutines.
*/
package seqview
