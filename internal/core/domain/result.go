package domain

// ReconcileResult summarizes one reconcile invocation: which skill keys were
// installed, updated, removed or left unchanged, any non-fatal warnings, and
// where the manifest and lock were persisted.
type ReconcileResult struct {
	Installed    []string
	Updated      []string
	Removed      []string
	Unchanged    []string
	Warnings     []string
	ManifestPath string
	LockPath     string
}
