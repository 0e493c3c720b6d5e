package filesystem

import (
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/djherbis/times"

	"tokdex/internal/domain"
)

// Scanner walks a library root and produces raw per-file records. Excluded
// directory patterns (doublestar globs, plain names included) are pruned
// from traversal.
type Scanner struct {
	root     string
	excludes []string
	titles   TitleFunc
}

// TitleFunc reads the embedded title of a PDF. A parse failure is reported
// as an error marker string, not an error.
type TitleFunc func(path string) string

// NewScanner creates a scanner over root. titles may be nil when the
// patterned scan is not used.
func NewScanner(root string, excludes []string, titles TitleFunc) *Scanner {
	// Expand ~ to home directory
	if strings.HasPrefix(root, "~") {
		home, _ := os.UserHomeDir()
		root = filepath.Join(home, root[1:])
	}
	return &Scanner{root: root, excludes: excludes, titles: titles}
}

// Root returns the expanded library root.
func (s *Scanner) Root() string {
	return s.root
}

func (s *Scanner) excluded(dirName string) bool {
	for _, pattern := range s.excludes {
		if ok, err := doublestar.Match(pattern, dirName); err == nil && ok {
			return true
		}
	}
	return false
}

// relFolder maps an absolute directory to the catalogued folder string:
// slash-separated, relative to the root, [root] for the root itself.
func (s *Scanner) relFolder(dir string) string {
	rel, err := filepath.Rel(s.root, dir)
	if err != nil || rel == "." {
		return domain.RootFolder
	}
	return filepath.ToSlash(rel)
}

// walk visits every PDF under the root, pruning excluded directories, and
// calls fn with the entry and its stat info. Per-file stat errors are
// logged and skipped so one unreadable file never aborts the walk.
func (s *Scanner) walk(fn func(path, name string, info fs.FileInfo)) error {
	return filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Printf("scan: skipping %s: %v", path, err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if path != s.root && s.excluded(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if !domain.IsPDF(d.Name()) {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			log.Printf("scan: skipping %s: %v", path, err)
			return nil
		}
		fn(path, d.Name(), info)
		return nil
	})
}

// Scan walks the whole library and returns one record per PDF, in
// traversal order.
func (s *Scanner) Scan() ([]domain.FileRecord, error) {
	var records []domain.FileRecord
	err := s.walk(func(path, name string, info fs.FileInfo) {
		code, base, _ := domain.ParsePrefix(name)
		records = append(records, domain.FileRecord{
			BaseName:   base,
			Code:       code,
			Folder:     s.relFolder(filepath.Dir(path)),
			Size:       info.Size(),
			CreatedAt:  createdTime(info),
			ModifiedAt: info.ModTime(),
		})
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// ScanPatterned restricts the walk to files that carry a recognized prefix
// and reads each document's embedded title.
func (s *Scanner) ScanPatterned() ([]domain.PatternedFile, error) {
	var results []domain.PatternedFile
	err := s.walk(func(path, name string, info fs.FileInfo) {
		code, base, ok := domain.ParsePrefix(name)
		if !ok {
			return
		}
		title := ""
		if s.titles != nil {
			title = s.titles(path)
		}
		results = append(results, domain.PatternedFile{
			Code:     code,
			BaseName: base,
			Folder:   s.relFolder(filepath.Dir(path)),
			Title:    title,
		})
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// ListBare lists the PDFs directly in folder that carry no recognized
// prefix, indexed by modification time descending.
func (s *Scanner) ListBare(folder string) (*domain.BareIndex, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, err
	}
	var bare []domain.BareFile
	for _, entry := range entries {
		if entry.IsDir() || !domain.IsPDF(entry.Name()) {
			continue
		}
		if _, _, ok := domain.ParsePrefix(entry.Name()); ok {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			log.Printf("list: skipping %s: %v", entry.Name(), err)
			continue
		}
		bare = append(bare, domain.BareFile{Name: entry.Name(), ModifiedAt: info.ModTime()})
	}
	return domain.NewBareIndex(bare), nil
}

// createdTime picks the closest thing to a creation timestamp the platform
// offers: birth time, then inode change time, then mtime.
func createdTime(info fs.FileInfo) time.Time {
	ts := times.Get(info)
	switch {
	case ts.HasBirthTime():
		return ts.BirthTime()
	case ts.HasChangeTime():
		return ts.ChangeTime()
	default:
		return info.ModTime()
	}
}
