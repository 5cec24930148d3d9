// Package docmeta extracts structured head metadata from parsed HTML
// documents: title, description, canonical URL, Open Graph and Twitter
// tags, JSON-LD, favicons, resource hints and the leftover meta/link
// elements no named category claims.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, etree/).
package docmeta
