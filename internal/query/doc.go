// Package query implements read-only operations over a snapshot of the movie
// collection: substring search, stable sorting, bound filtering, aggregate
// statistics, and a random pick. Nothing here mutates the library; every
// function takes the slice returned by Library.Movies and leaves it intact.
package query
