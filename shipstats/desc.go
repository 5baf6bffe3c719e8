package shipstats

import (
	"fmt"
	"strconv"
	"strings"
)

// Desc renders one line per stat of s that differs from its identity, in
// type order.
func Desc(s *Stats) string {
	var lines []string
	for t := TypeNil + 1; t < NumTypes; t++ {
		if s.IsIdentity(t) {
			continue
		}
		f, _ := FieldFromType(t)
		lines = append(lines, describe(t, f.Value(s), false))
	}
	return strings.Join(lines, "\n")
}

// ListDesc renders one line per entry of l. Target entries are marked.
func ListDesc(l List) string {
	lines := make([]string, 0, len(l))
	for _, e := range l {
		if !e.Type.Valid() {
			continue
		}
		v := e.Value
		if e.Type.Kind() == Relative {
			v++
		}
		lines = append(lines, describe(e.Type, v, e.Target))
	}
	return strings.Join(lines, "\n")
}

func describe(t Type, v float64, target bool) string {
	var line string
	switch t.Kind() {
	case Relative:
		line = fmt.Sprintf("%+.0f%% %s", (v-1)*100, t.Display())
	case Absolute:
		line = fmt.Sprintf("%+.0f %s", v, t.Display())
	case Integer:
		line = fmt.Sprintf("%+d %s", roundInt(v), t.Display())
	case Boolean:
		line = t.Display()
	}
	if target {
		line += " (target)"
	}
	return line
}

// CSVHeader lists every stat name in type order.
func CSVHeader() string {
	names := make([]string, 0, NumTypes-1)
	for t := TypeNil + 1; t < NumTypes; t++ {
		names = append(names, typeTable[t].name)
	}
	return strings.Join(names, ",")
}

// CSV renders every field of s in the column order of CSVHeader.
func CSV(s *Stats) string {
	cols := make([]string, 0, NumTypes-1)
	for t := TypeNil + 1; t < NumTypes; t++ {
		f, _ := FieldFromType(t)
		v := f.Value(s)
		switch t.Kind() {
		case Integer, Boolean:
			cols = append(cols, strconv.Itoa(roundInt(v)))
		default:
			cols = append(cols, strconv.FormatFloat(v, 'g', -1, 64))
		}
	}
	return strings.Join(cols, ",")
}
