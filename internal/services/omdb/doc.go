// Package omdb implements the metadata lookup client against the OMDb API.
//
// Lookup resolves a title to a complete movie record, translating OMDb's
// quirks (Year ranges like "2010–2013", "N/A" placeholders) into clean
// values. A client-side rate limiter keeps bursts under the free-tier quota.
// Failures map onto the shared error taxonomy: no match is ErrNotFound,
// transport and non-200 responses are ErrNetwork.
package omdb
