package pluginhost

import (
	"bufio"
	"encoding/binary"
	"hash/crc32"
	"io"
	"os"
	"path/filepath"
	"strings"

	ordinatorerrors "github.com/ordinator-tools/ordinator/pkg/errors"
	"github.com/ordinator-tools/ordinator/pkg/pluginview"
)

// LocalInspector is the in-process fallback used when no external
// inspection executable is configured (internal/container wires this
// in by default). It reads just enough of the TES4 record —
// the record flags word and its HEDR (record count), MAST and SNAM
// subrecords — to populate a View; it does not attempt full FormID enumeration
// across compressed or large plugins, which is exactly the gap the
// external plugin-inspection contract exists to fill (spec.md §6).
type LocalInspector struct{}

func (LocalInspector) Inspect(path string) (pluginview.View, error) {
	f, err := os.Open(path)
	if err != nil {
		return pluginview.View{}, ordinatorerrors.NewFileAccess(path, "cannot open plugin file", ordinatorerrors.WithCause(err))
	}
	defer f.Close()

	view := pluginview.View{Name: filepath.Base(path)}
	ext := strings.ToLower(filepath.Ext(path))
	view.IsLight = ext == ".esl"

	r := bufio.NewReader(f)
	header, err := readHeaderRecord(r)
	if err != nil {
		return pluginview.View{}, ordinatorerrors.NewFileAccess(path, "cannot read plugin header", ordinatorerrors.WithCause(err))
	}

	view.IsMaster = header.isMaster || ext == ".esm"
	view.IsLight = view.IsLight || header.isLight
	view.IsEmpty = header.recordCount == 0
	view.Masters = header.masters
	view.Version = header.version

	crc, err := checksumFile(path)
	if err != nil {
		return pluginview.View{}, err
	}
	view.CRC = crc

	return view, nil
}

type headerRecord struct {
	isMaster    bool
	isLight     bool
	recordCount uint32
	masters     []string
	version     string
}

const (
	flagMaster = 0x00000001
	flagLight  = 0x00000200
)

// readHeaderRecord reads the leading "TES4" (or "TES3") record and
// extracts the fields the sorter and condition evaluator need.
// Unrecognised record types are treated as a header with no masters
// rather than an error, matching an empty/placeholder plugin.
func readHeaderRecord(r *bufio.Reader) (headerRecord, error) {
	var sig [4]byte
	if _, err := io.ReadFull(r, sig[:]); err != nil {
		if err == io.EOF {
			return headerRecord{}, nil
		}
		return headerRecord{}, err
	}
	if string(sig[:]) != "TES4" && string(sig[:]) != "TES3" {
		return headerRecord{}, nil
	}

	var dataSize uint32
	if err := binary.Read(r, binary.LittleEndian, &dataSize); err != nil {
		return headerRecord{}, err
	}
	var flags uint32
	if err := binary.Read(r, binary.LittleEndian, &flags); err != nil {
		return headerRecord{}, err
	}
	// Skip form ID and version control info (8 bytes) to reach the
	// subrecord stream.
	if _, err := r.Discard(8); err != nil {
		return headerRecord{}, err
	}

	out := headerRecord{
		isMaster: flags&flagMaster != 0,
		isLight:  flags&flagLight != 0,
	}

	remaining := int(dataSize)
	for remaining > 0 {
		var subSig [4]byte
		if _, err := io.ReadFull(r, subSig[:]); err != nil {
			break
		}
		var subSize uint16
		if err := binary.Read(r, binary.LittleEndian, &subSize); err != nil {
			break
		}
		remaining -= 6

		payload := make([]byte, subSize)
		if _, err := io.ReadFull(r, payload); err != nil {
			break
		}
		remaining -= int(subSize)

		switch string(subSig[:]) {
		case "MAST":
			out.masters = append(out.masters, strings.TrimRight(string(payload), "\x00"))
		case "SNAM":
			out.version = strings.TrimRight(string(payload), "\x00")
		case "HEDR":
			if len(payload) >= 8 {
				out.recordCount = binary.LittleEndian.Uint32(payload[4:8])
			}
		}
	}

	return out, nil
}

func checksumFile(path string) (uint32, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, ordinatorerrors.NewFileAccess(path, "cannot open plugin file for checksum", ordinatorerrors.WithCause(err))
	}
	defer f.Close()

	h := crc32.NewIEEE()
	if _, err := io.Copy(h, f); err != nil {
		return 0, ordinatorerrors.NewFileAccess(path, "cannot read plugin file for checksum", ordinatorerrors.WithCause(err))
	}
	return h.Sum32(), nil
}

var _ pluginview.Inspector = LocalInspector{}
