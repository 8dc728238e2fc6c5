// Package seed loads the data a store starts from: reference data, the
// administrator allow-list, and demonstration entities.
//
// The default data set is embedded. A file with the same YAML shape can be
// supplied instead; it replaces the embedded set entirely.
package seed

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"escrutinio/internal/electoral/models"
	id "escrutinio/pkg/domain"
)

// MaxFileSize bounds seed files read from disk.
const MaxFileSize = 1 << 20

//go:embed seed.yaml
var defaultSeedYAML []byte

// Data is a complete starting state.
type Data struct {
	Admins      []models.AdminAccount
	Provinces   []models.Province
	Districts   []models.District
	Candidates  []models.Candidate
	Tables      []models.Table
	Agents      []models.Agent
	TallySheets []models.TallySheet
}

type file struct {
	Admins      []models.AdminAccount `yaml:"admins"`
	Provinces   []models.Province     `yaml:"provinces"`
	Districts   []models.District     `yaml:"districts"`
	Candidates  []candidateRecord     `yaml:"candidates"`
	Tables      []tableRecord         `yaml:"tables"`
	Agents      []agentRecord         `yaml:"agents"`
	TallySheets []tallySheetRecord    `yaml:"tally_sheets"`
}

type candidateRecord struct {
	ID     string `yaml:"id"`
	Name   string `yaml:"name"`
	Party  string `yaml:"party"`
	Number int    `yaml:"number"`
	Color  string `yaml:"color"`
	Logo   string `yaml:"logo"`
}

type tableRecord struct {
	ID          string `yaml:"id"`
	Number      string `yaml:"number"`
	Locale      string `yaml:"locale"`
	Department  string `yaml:"department"`
	Province    string `yaml:"province"`
	District    string `yaml:"district"`
	TotalVoters int    `yaml:"total_voters"`
}

type agentRecord struct {
	ID         string `yaml:"id"`
	Name       string `yaml:"name"`
	NationalID string `yaml:"national_id"`
	TableID    string `yaml:"table_id"`
	Password   string `yaml:"password"`
}

type tallySheetRecord struct {
	ID               string         `yaml:"id"`
	TableID          string         `yaml:"table_id"`
	BlankVotes       int            `yaml:"blank_votes"`
	NullVotes        int            `yaml:"null_votes"`
	ChallengedVotes  int            `yaml:"challenged_votes"`
	VotesByCandidate map[string]int `yaml:"votes_by_candidate"`
	ImageURL         string         `yaml:"image_url"`
	Status           string         `yaml:"status"`
	SubmittedAt      time.Time      `yaml:"submitted_at"`
	SourceAddress    string         `yaml:"source_address"`
}

// Default returns the embedded demonstration data set.
func Default() (*Data, error) {
	return Parse(defaultSeedYAML)
}

// Load reads path, or returns Default when path is empty.
func Load(path string) (*Data, error) {
	if path == "" {
		return Default()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()

	raw, err := io.ReadAll(io.LimitReader(f, MaxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	if len(raw) > MaxFileSize {
		return nil, fmt.Errorf("seed file %s exceeds %d bytes", path, MaxFileSize)
	}
	return Parse(raw)
}

// Parse decodes and checks a YAML seed document.
func Parse(raw []byte) (*Data, error) {
	var f file
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}

	data, err := f.toData()
	if err != nil {
		return nil, err
	}
	if err := data.Check(); err != nil {
		return nil, err
	}
	return data, nil
}

func (f file) toData() (*Data, error) {
	d := &Data{
		Admins:    f.Admins,
		Provinces: f.Provinces,
		Districts: f.Districts,
	}
	for _, c := range f.Candidates {
		color := c.Color
		if color == "" {
			color = models.DefaultCandidateColor
		}
		d.Candidates = append(d.Candidates, models.Candidate{
			ID:     id.CandidateID(c.ID),
			Name:   c.Name,
			Party:  c.Party,
			Number: c.Number,
			Color:  color,
			Logo:   c.Logo,
		})
	}
	for _, t := range f.Tables {
		d.Tables = append(d.Tables, models.Table{
			ID:          id.TableID(t.ID),
			Number:      t.Number,
			Locale:      t.Locale,
			Department:  t.Department,
			Province:    t.Province,
			District:    t.District,
			TotalVoters: t.TotalVoters,
		})
	}
	for _, a := range f.Agents {
		d.Agents = append(d.Agents, models.Agent{
			ID:         id.AgentID(a.ID),
			Name:       a.Name,
			NationalID: id.NationalID(a.NationalID),
			TableID:    id.TableID(a.TableID),
			Password:   a.Password,
		})
	}

	totals := make(map[id.TableID]int, len(d.Tables))
	for _, t := range d.Tables {
		totals[t.ID] = t.TotalVoters
	}
	for _, s := range f.TallySheets {
		status, err := id.ParseTallyStatus(s.Status)
		if err != nil {
			return nil, fmt.Errorf("tally sheet %s: %w", s.ID, err)
		}
		votes := make(models.VotesByCandidate, len(s.VotesByCandidate))
		for cid, n := range s.VotesByCandidate {
			votes[id.CandidateID(cid)] = n
		}
		d.TallySheets = append(d.TallySheets, models.TallySheet{
			ID:               id.TallySheetID(s.ID),
			TableID:          id.TableID(s.TableID),
			TotalVoters:      totals[id.TableID(s.TableID)],
			BlankVotes:       s.BlankVotes,
			NullVotes:        s.NullVotes,
			ChallengedVotes:  s.ChallengedVotes,
			VotesByCandidate: votes,
			ImageURL:         s.ImageURL,
			Status:           status,
			SubmittedAt:      s.SubmittedAt,
			SourceAddress:    s.SourceAddress,
		})
	}
	return d, nil
}
