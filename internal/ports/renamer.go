package ports

// FileRenamer applies classification prefixes and renames files, refusing
// to clobber an existing destination.
type FileRenamer interface {
	// ApplyPrefix renames folder/currentName to carry the ToK code as a
	// spaced prefix, returning the new filename.
	ApplyPrefix(folder, currentName, code string) (string, error)

	// RenameTo renames folder/currentName to folder/newName.
	RenameTo(folder, currentName, newName string) error
}

// FileOpener opens a file with the platform's default viewer. Presentation
// collaborator; nothing here affects data correctness.
type FileOpener interface {
	OpenFile(path string) error
}
