// Package catalogue owns the transit data model: stops, buses, and the
// directed stop-to-stop road distances between them. It derives and
// caches per-bus statistics (stop count, unique stops, road length,
// curvature) at insertion time.
//
// Storage model:
//
//   - Stops and buses live in append-only slices (an arena), so every
//     handle returned (StopID, BusID) stays valid for the catalogue's
//     whole lifetime — no pointers, no cyclic references, trivial to
//     snapshot. This replaces the original C++ source's raw back-pointers
//     (Stop* / Bus*) per the "cyclic references" design note.
//   - Name → handle lookups are O(1) maps (StopIndex / BusIndex).
//   - StopToBuses is built incrementally as buses are added; every stop
//     gets an entry (possibly empty) as soon as it is added, mirroring
//     the original's stop_to_buses[&stop] seeding in AddStop.
//
// Concurrency: Catalogue is single-writer during construction
// (AddStop/SetDistance/AddBus) and safe for concurrent readers once
// construction is finished; it does not lock internally — callers that
// need concurrent mutation+query must supply an outer reader-writer
// protocol (see spec §5).
package catalogue
