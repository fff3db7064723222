package fsstore

import "path/filepath"

// Storage layout (all JSON unless noted):
//
//	<root>/<work_id>/work.json
//	<root>/<work_id>/verses/<verse_id>.json
//	<root>/<work_id>/commentary/<verse_id>/<commentary_id>.json
//	<root>/<work_id>/commentary/work/<commentary_id>.json
//	<root>/<work_id>/trash/...                    (mirrored relative paths)
//	<root>/<work_id>/trash/tombstones/<kind>/<id>.json
//	<root>/<work_id>/build/<work_id>.all.json
//	<root>/<work_id>/export/<work_id>.clean.json
//	<root>/<work_id>/export/<work_id>.train.jsonl
//	<root>/_users.json
const (
	WorkFile      = "work.json"
	VersesDir     = "verses"
	CommentaryDir = "commentary"
	WorkScopeDir  = "work"
	TrashDir      = "trash"
	TombstonesDir = "tombstones"
	BuildDir      = "build"
	ExportDir     = "export"
	UsersFile     = "_users.json"
)

// WorkDir returns the top-level directory of a work.
func (s *Store) WorkDir(workID string) string {
	return filepath.Join(s.root, workID)
}

// WorkPath returns the location of a work's own record.
func (s *Store) WorkPath(workID string) string {
	return filepath.Join(s.WorkDir(workID), WorkFile)
}

// VersesPath returns the verse sub-area of a work.
func (s *Store) VersesPath(workID string) string {
	return filepath.Join(s.WorkDir(workID), VersesDir)
}

// VersePath returns the canonical location of one verse record.
func (s *Store) VersePath(workID, verseID string) string {
	return filepath.Join(s.VersesPath(workID), verseID+".json")
}

// CommentaryRoot returns the commentary sub-area of a work. Both
// verse-scoped and work-scoped records live beneath it.
func (s *Store) CommentaryRoot(workID string) string {
	return filepath.Join(s.WorkDir(workID), CommentaryDir)
}

// CommentaryPath returns the canonical location of a commentary record.
// verseID == "" places the record under the work-wide scope.
func (s *Store) CommentaryPath(workID, commentaryID, verseID string) string {
	scope := verseID
	if scope == "" {
		scope = WorkScopeDir
	}
	return filepath.Join(s.CommentaryRoot(workID), scope, commentaryID+".json")
}

// TrashPath mirrors a live relative path under the work's trash area.
func (s *Store) TrashPath(workID, rel string) string {
	return filepath.Join(s.WorkDir(workID), TrashDir, rel)
}

// TombstonePath returns the deletion-receipt location for a record.
// kind is "verses" or "commentary".
func (s *Store) TombstonePath(workID, kind, id string) string {
	return filepath.Join(s.WorkDir(workID), TrashDir, TombstonesDir, kind, id+".json")
}

// BuildPath returns the merged-artifact location of a work.
func (s *Store) BuildPath(workID string) string {
	return filepath.Join(s.WorkDir(workID), BuildDir, workID+".all.json")
}

// CleanExportPath returns the redacted-export location of a work.
func (s *Store) CleanExportPath(workID string) string {
	return filepath.Join(s.WorkDir(workID), ExportDir, workID+".clean.json")
}

// TrainExportPath returns the flattened JSONL export location of a work.
func (s *Store) TrainExportPath(workID string) string {
	return filepath.Join(s.WorkDir(workID), ExportDir, workID+".train.jsonl")
}

// UsersPath returns the location of the user registry.
func (s *Store) UsersPath() string {
	return filepath.Join(s.root, UsersFile)
}

// WorkRel converts an absolute record path into the path relative to its
// work directory ("verses/V0001.json"). Tombstones record these.
func (s *Store) WorkRel(workID, path string) (string, error) {
	return filepath.Rel(s.WorkDir(workID), path)
}
