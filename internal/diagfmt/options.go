package diagfmt

// Opts configures rendering. Color is an explicit value threaded into
// Render; the renderer never reads the process environment.
type Opts struct {
	Color bool
}
