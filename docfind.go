// Package docfind provides a local, CLI-based keyword search over document
// trees. It walks a directory, extracts text from PDF pages and DOCX
// paragraphs, and reports every unit that contains the keyword together with
// a short excerpt around the first occurrence. Results are memoized by
// keyword in a durable store.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, pdf/, docx/, fs/).
package docfind
