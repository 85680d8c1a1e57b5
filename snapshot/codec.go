package snapshot

import (
	"bytes"
	"fmt"
	"io"

	"github.com/lvl-transit/transitway/catalogue"
	"github.com/lvl-transit/transitway/mapview"
	"github.com/lvl-transit/transitway/transit"
)

// magic identifies a transitway snapshot file; version allows the
// on-disk format to evolve without confusing it for a different tool's
// output.
const (
	magic   = "TWSS"
	version = 1
)

// Snapshot is the complete persisted state written by make_base and
// read back by process_requests: the catalogue, both setting groups,
// and the router's precomputed graph/table.
type Snapshot struct {
	Catalogue      *catalogue.Catalogue
	RoutingSettings transit.Settings
	RenderSettings mapview.RenderSettings
	Router         transit.SnapshotState
}

// Encode writes snap to out in the transitway binary snapshot format.
func Encode(out io.Writer, snap Snapshot) error {
	var buf bytes.Buffer
	buf.WriteString(magic)
	buf.WriteByte(version)

	encodeCatalogue(&buf, snap.Catalogue)
	encodeRenderSettings(&buf, snap.RenderSettings)
	encodeRouter(&buf, snap.Router)

	_, err := out.Write(buf.Bytes())
	return err
}

// Decode reads a Snapshot previously written by Encode.
func Decode(in io.Reader) (Snapshot, error) {
	data, err := io.ReadAll(in)
	if err != nil {
		return Snapshot{}, fmt.Errorf("snapshot: reading input: %w", err)
	}
	if len(data) < len(magic)+1 || string(data[:len(magic)]) != magic {
		return Snapshot{}, fmt.Errorf("snapshot: not a transitway snapshot file")
	}
	if data[len(magic)] != version {
		return Snapshot{}, fmt.Errorf("snapshot: unsupported version %d", data[len(magic)])
	}

	r := bytes.NewReader(data[len(magic)+1:])

	cat, err := decodeCatalogue(r)
	if err != nil {
		return Snapshot{}, fmt.Errorf("snapshot: decode catalogue: %w", err)
	}

	renderSettings, err := decodeRenderSettings(r)
	if err != nil {
		return Snapshot{}, fmt.Errorf("snapshot: decode render settings: %w", err)
	}

	routerState, err := decodeRouter(r)
	if err != nil {
		return Snapshot{}, fmt.Errorf("snapshot: decode router: %w", err)
	}

	return Snapshot{
		Catalogue:       cat,
		RoutingSettings: routerState.Settings,
		RenderSettings:  renderSettings,
		Router:          routerState,
	}, nil
}
