package repository

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"litmus/internal/model"
)

var ErrNotFound = errors.New("content not found")

// ContentRepository stores generated documents under a content root:
//
//	<root>/<region>/<type>.json   briefs
//	<root>/weekend/magazine.json  weekend magazine
type ContentRepository struct {
	root        string
	historyPath string
}

func NewContentRepository(root, historyPath string) *ContentRepository {
	return &ContentRepository{root: root, historyPath: historyPath}
}

func (r *ContentRepository) BriefPath(region, briefType string) string {
	return filepath.Join(r.root, region, briefType+".json")
}

func (r *ContentRepository) MagazinePath() string {
	return filepath.Join(r.root, "weekend", "magazine.json")
}

func (r *ContentRepository) SaveBrief(brief *model.Brief) (string, error) {
	path := r.BriefPath(brief.Region, brief.Type)
	return path, WriteJSONFile(path, brief)
}

func (r *ContentRepository) SaveMagazine(magazine *model.Magazine) (string, error) {
	path := r.MagazinePath()
	return path, WriteJSONFile(path, magazine)
}

func (r *ContentRepository) ReadBrief(region, briefType string) ([]byte, error) {
	return readFile(r.BriefPath(region, briefType))
}

func (r *ContentRepository) ReadMagazine() ([]byte, error) {
	return readFile(r.MagazinePath())
}

func (r *ContentRepository) ReadMoodHistory() ([]byte, error) {
	return readFile(r.historyPath)
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	return data, err
}
