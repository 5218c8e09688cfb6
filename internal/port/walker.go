package port

// FileWalker lists the documents of a corpus folder.
type FileWalker interface {
	List(folder, extension string) ([]FileInfo, error)
}

type FileInfo struct {
	Name    string
	Path    string
	ModTime int64
	Size    int64
}

// DocumentReader returns the decoded text of a document.
type DocumentReader interface {
	ReadDocument(path string) (string, error)
}
