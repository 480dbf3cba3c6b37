package codeio

import (
	"crypto/md5"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	mat "github.com/nathanhack/sparsemat"
	"github.com/nathanhack/stabilizer/benchmarking"
	"github.com/nathanhack/stabilizer/classical"
	"github.com/nathanhack/stabilizer/css"
)

// SimulationStats holds a sweep of decoder benchmark results keyed by
// crossover probability.
type SimulationStats struct {
	TypeInfo string
	CodeInfo string
	Stats    map[float64]benchmarking.Stats
}

type simulationStats struct {
	TypeInfo string
	CodeInfo string
	Stats    map[string]benchmarking.Stats
}

func (s *SimulationStats) MarshalJSON() ([]byte, error) {
	ss := simulationStats{
		TypeInfo: s.TypeInfo,
		CodeInfo: s.CodeInfo,
		Stats:    map[string]benchmarking.Stats{},
	}

	for f, stat := range s.Stats {
		ss.Stats[fmt.Sprintf("%v", f)] = stat
	}

	return json.Marshal(ss)
}

func (s *SimulationStats) UnmarshalJSON(bytes []byte) error {
	var ss simulationStats

	err := json.Unmarshal(bytes, &ss)
	if err != nil {
		return err
	}

	s.TypeInfo = ss.TypeInfo
	s.CodeInfo = ss.CodeInfo
	s.Stats = map[float64]benchmarking.Stats{}

	for fs, stat := range ss.Stats {
		f, err := strconv.ParseFloat(fs, 64)
		if err != nil {
			return err
		}
		s.Stats[f] = stat
	}
	return nil
}

// Md5Sum fingerprints a parity check matrix so results files can be matched
// back to the code that produced them.
func Md5Sum(H mat.SparseMat) string {
	return fmt.Sprintf("%x", md5.Sum([]byte(H.String())))
}

func LoadClassical(filepath string) (*classical.Code, error) {
	bs, err := readExisting(filepath, "CODE_JSON")
	if err != nil {
		return nil, err
	}

	var code classical.Code
	err = json.Unmarshal(bs, &code)
	if err != nil {
		return nil, fmt.Errorf("error while unmarshalling file %v: %v", filepath, err)
	}

	return &code, nil
}

func LoadCSS(filepath string) (*css.Code, error) {
	bs, err := readExisting(filepath, "CODE_JSON")
	if err != nil {
		return nil, err
	}

	var code css.Code
	err = json.Unmarshal(bs, &code)
	if err != nil {
		return nil, fmt.Errorf("error while unmarshalling file %v: %v", filepath, err)
	}

	return &code, nil
}

func SaveJSON(filepath string, data interface{}) error {
	bs, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error serializing: %v", err)
	}

	err = os.WriteFile(filepath, bs, 0644)
	if err != nil {
		return fmt.Errorf("error while saving to %v: %v", filepath, err)
	}
	return nil
}

func LoadResults(filepath string) (*SimulationStats, error) {
	if _, err := os.Stat(filepath); os.IsNotExist(err) {
		return nil, nil
	}

	bs, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("error while reading file %v: %v", filepath, err)
	}

	var stat SimulationStats
	err = json.Unmarshal(bs, &stat)
	if err != nil {
		return nil, fmt.Errorf("error while unmarshalling file %v: %v", filepath, err)
	}
	return &stat, nil
}

func SaveResults(filepath string, data *SimulationStats) error {
	return SaveJSON(filepath, data)
}

func readExisting(filepath, kind string) ([]byte, error) {
	if _, err := os.Stat(filepath); os.IsNotExist(err) {
		return nil, fmt.Errorf("the %v file must exist", kind)
	}

	bs, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("error while reading file %v: %v", filepath, err)
	}
	return bs, nil
}
