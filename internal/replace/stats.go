package replace

// Stats tracks per-run outcome counters.
type Stats struct {
	Containers   int // backdrops reached by the input nodes
	Unidentified int
	NoCameras    int
	Unresolved   int
	Cancelled    int
	Replaced     int // cameras substituted
	Failed       int // splices aborted (import failed or no camera in file)
}
