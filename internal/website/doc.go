// Package website renders the collection to a static HTML page.
//
// Generate writes index.html and style.css to the configured output
// directory from embedded templates. Movies render as a grid of poster cards
// in current store order; html/template handles escaping of titles and URLs.
package website
