package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/urfave/cli/v2"

	"github.com/hodakamori/megane"
	"github.com/hodakamori/megane/format/gro"
	"github.com/hodakamori/megane/format/mol"
	"github.com/hodakamori/megane/format/pdb"
	"github.com/hodakamori/megane/format/top"
	"github.com/hodakamori/megane/format/xyz"
	"github.com/hodakamori/megane/structurehash"
	"github.com/hodakamori/megane/xtc"
)

// summary is the JSON shape the `parse` subcommand prints and the `diff`
// subcommand compares.
type summary struct {
	NAtoms     int  `json:"n_atoms"`
	NBonds     int  `json:"n_bonds"`
	NFileBonds int  `json:"n_file_bonds"`
	NFrames    int  `json:"n_frames"`
	HasBox     bool `json:"has_box"`
}

// parseAny dispatches to the right format package and returns both a
// printable summary and the canonical encoding the hash subcommand
// digests.
func parseAny(format, path string, nAtoms int) (summary, []byte, error) {
	switch format {
	case "top":
		text, err := os.ReadFile(path)
		if err != nil {
			return summary{}, nil, err
		}
		if nAtoms == 0 {
			return summary{}, nil, fmt.Errorf("megane: --n-atoms is required for the top format")
		}
		bonds, err := top.ParseBonds(string(text), nAtoms)
		if err != nil {
			return summary{}, nil, err
		}
		s := &megane.ParsedStructure{NAtoms: nAtoms, Bonds: bonds, NFileBonds: len(bonds)}
		return summary{NAtoms: nAtoms, NBonds: len(bonds), NFileBonds: len(bonds), NFrames: 1}, structurehash.EncodeStructure(s), nil

	case "xtc":
		data, err := os.ReadFile(path)
		if err != nil {
			return summary{}, nil, err
		}
		x, err := xtc.Parse(data)
		if err != nil {
			return summary{}, nil, err
		}
		return summary{NAtoms: x.NAtoms, NFrames: x.NFrames, HasBox: x.BoxMatrix != nil}, structurehash.EncodeXtc(x), nil

	case "pdb", "gro", "xyz", "mol":
		text, err := os.ReadFile(path)
		if err != nil {
			return summary{}, nil, err
		}
		s, err := parseTextFormat(format, string(text))
		if err != nil {
			return summary{}, nil, err
		}
		return summary{
			NAtoms:     s.NAtoms,
			NBonds:     len(s.Bonds),
			NFileBonds: s.NFileBonds,
			NFrames:    1 + len(s.FramePositions),
			HasBox:     s.BoxMatrix != nil,
		}, structurehash.EncodeStructure(s), nil

	default:
		return summary{}, nil, fmt.Errorf("megane: unknown format %q", format)
	}
}

func parseTextFormat(format, text string) (*megane.ParsedStructure, error) {
	switch format {
	case "pdb":
		return pdb.Parse(text)
	case "gro":
		return gro.Parse(text)
	case "xyz":
		return xyz.Parse(text)
	case "mol":
		return mol.Parse(text)
	default:
		return nil, fmt.Errorf("megane: unknown text format %q", format)
	}
}

func parseCommand(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		return fmt.Errorf("megane: parse requires a file path")
	}
	s, _, err := parseAny(c.String("format"), path, c.Int("n-atoms"))
	if err != nil {
		return err
	}
	out, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, string(out))
	return nil
}

func hashCommand(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		return fmt.Errorf("megane: hash requires a file path")
	}
	_, encoded, err := parseAny(c.String("format"), path, c.Int("n-atoms"))
	if err != nil {
		return err
	}
	digest, err := structurehash.Hash(encoded, c.String("algo"))
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, digest)
	return nil
}

func diffCommand(c *cli.Context) error {
	pathA := c.Args().Get(0)
	pathB := c.Args().Get(1)
	if pathA == "" || pathB == "" {
		return fmt.Errorf("megane: diff requires two file paths")
	}

	format := c.String("format")
	nAtoms := c.Int("n-atoms")

	sA, _, err := parseAny(format, pathA, nAtoms)
	if err != nil {
		return err
	}
	sB, _, err := parseAny(format, pathB, nAtoms)
	if err != nil {
		return err
	}

	jsonA, err := json.MarshalIndent(sA, "", "  ")
	if err != nil {
		return err
	}
	jsonB, err := json.MarshalIndent(sB, "", "  ")
	if err != nil {
		return err
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(string(jsonA), string(jsonB), false)
	fmt.Fprintln(c.App.Writer, dmp.DiffPrettyText(diffs))
	return nil
}
