/*
Package top extracts bond pairs from a GROMACS .top topology file's
[ bonds ] section. It ignores every other section, as this tool only
cares about connectivity, not force-field parameters.
*/
package top

import (
	"strconv"
	"strings"

	"github.com/hodakamori/megane"
)

// ParseBonds scans a .top file for its [ bonds ] section and returns the
// declared bonds as 0-indexed atom pairs. Atom indices that would fall
// outside nAtoms are silently dropped rather than treated as errors,
// matching how incomplete topology/coordinate pairings are tolerated
// elsewhere in this tool.
func ParseBonds(text string, nAtoms int) ([]megane.Bond, error) {
	var bonds []megane.Bond
	inBondsSection := false

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, ";") {
			continue
		}

		if strings.HasPrefix(trimmed, "[") {
			section := strings.ToLower(strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(trimmed, "["), "]")))
			inBondsSection = section == "bonds"
			continue
		}

		if !inBondsSection {
			continue
		}

		data := trimmed
		if pos := strings.Index(trimmed, ";"); pos >= 0 {
			data = trimmed[:pos]
		}

		fields := strings.Fields(data)
		if len(fields) < 2 {
			continue
		}
		ai, errA := strconv.Atoi(fields[0])
		aj, errB := strconv.Atoi(fields[1])
		if errA != nil || errB != nil {
			continue
		}
		if ai == 0 || aj == 0 {
			continue
		}

		a, b := uint32(ai-1), uint32(aj-1)
		if a > b {
			a, b = b, a
		}
		if int(b) < nAtoms {
			bonds = append(bonds, megane.Bond{A: a, B: b})
		}
	}

	return bonds, nil
}
