package registry

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// Units lists the accepted report units, smallest first. All are 1024-based.
var Units = []string{"B", "KB", "MB", "GB", "TB"}

var unitDivisors = map[string]float64{
	"B":  1,
	"KB": 1024,
	"MB": 1024 * 1024,
	"GB": 1024 * 1024 * 1024,
	"TB": 1024 * 1024 * 1024 * 1024,
}

func divisorFor(units string) (float64, error) {
	div, ok := unitDivisors[units]
	if !ok {
		return 0, newError(KindInvalidArgument, "report", units,
			fmt.Errorf("unknown unit, expected one of %s", strings.Join(Units, ", ")))
	}
	return div, nil
}

// FileSize is the size of one file in the requested units.
type FileSize struct {
	Path string
	Size float64
}

// TagSize returns the total size in bytes of a tag's current files.
// A file removed since the scan fails with a NotFound error.
func (r *Registry) TagSize(tag string) (int64, error) {
	e, ok := r.entries[tag]
	if !ok {
		return 0, newError(KindNotFound, "size", tag, nil)
	}

	var total int64
	for _, f := range e.files {
		size, err := r.matcher.SizeOf(f)
		if err != nil {
			return 0, classifyFSError("size", f, err)
		}
		total += size
	}
	return total, nil
}

// FileSizes returns the size of each path in units, largest first.
func (r *Registry) FileSizes(paths []string, units string) ([]FileSize, error) {
	div, err := divisorFor(units)
	if err != nil {
		return nil, err
	}

	sizes := make([]FileSize, 0, len(paths))
	for _, p := range paths {
		size, err := r.matcher.SizeOf(p)
		if err != nil {
			return nil, classifyFSError("size", p, err)
		}
		sizes = append(sizes, FileSize{Path: p, Size: float64(size) / div})
	}

	sort.SliceStable(sizes, func(i, j int) bool {
		return sizes[i].Size > sizes[j].Size
	})
	return sizes, nil
}

// WriteReport writes one line per tag, in insertion order:
//
//	<count> <tag> files taking up <size> <units>
//
// Sizes are formatted with three decimals. Nothing is written if any file
// cannot be stat'ed.
func (r *Registry) WriteReport(w io.Writer, units string) error {
	report, err := r.Report(units)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, report)
	return err
}

// Report returns the text written by WriteReport.
func (r *Registry) Report(units string) (string, error) {
	div, err := divisorFor(units)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, tag := range r.order {
		total, err := r.TagSize(tag)
		if err != nil {
			return "", err
		}
		sb.WriteString(fmt.Sprintf("%d %s files taking up %.3f %s\n",
			len(r.entries[tag].files), tag, float64(total)/div, units))
	}
	return sb.String(), nil
}

// DetailedReport is Report with each tag's files listed under its line,
// largest first:
//
//	3 video files taking up 1.500 MB
//	    1.000 MB  /data/sony/142Camera.avi
func (r *Registry) DetailedReport(units string) (string, error) {
	div, err := divisorFor(units)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, tag := range r.order {
		files := r.entries[tag].files
		sizes, err := r.FileSizes(files, units)
		if err != nil {
			return "", err
		}
		total, err := r.TagSize(tag)
		if err != nil {
			return "", err
		}
		sb.WriteString(fmt.Sprintf("%d %s files taking up %.3f %s\n", len(files), tag, float64(total)/div, units))
		for _, f := range sizes {
			sb.WriteString(fmt.Sprintf("    %.3f %s  %s\n", f.Size, units, f.Path))
		}
	}
	return sb.String(), nil
}
