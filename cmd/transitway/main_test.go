package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const requestDoc = `{
  "serialization_settings": {"file": "%s"},
  "base_requests": [
    {"type":"Stop","name":"A","latitude":55.611087,"longitude":37.208290,"road_distances":{"B":3900}},
    {"type":"Stop","name":"B","latitude":55.595884,"longitude":37.209755,"road_distances":{"A":3900}},
    {"type":"Bus","name":"256","stops":["A","B","A"],"is_roundtrip":true}
  ],
  "routing_settings": {"bus_wait_time": 6, "bus_velocity": 40},
  "render_settings": {
    "width": 600, "height": 400, "padding": 50,
    "line_width": 14, "stop_radius": 5, "underlayer_width": 3,
    "bus_label_font_size": 20, "stop_label_font_size": 18,
    "bus_label_offset": [7, 15], "stop_label_offset": [7, -3],
    "underlayer_color": [255, 255, 255, 0.85],
    "color_palette": ["green", [255, 160, 0]]
  }
}`

const statRequestDoc = `{
  "serialization_settings": {"file": "%s"},
  "stat_requests": [
    {"id": 1, "type": "Stop", "name": "A"},
    {"id": 2, "type": "Bus", "name": "256"},
    {"id": 3, "type": "Route", "from": "A", "to": "B"},
    {"id": 4, "type": "Map"}
  ]
}`

func TestMakeBaseThenProcessRequests(t *testing.T) {
	require := require.New(t)
	snapFile := filepath.Join(t.TempDir(), "base.db")

	makeBaseInput := strings.NewReader(fmt.Sprintf(requestDoc, snapFile))
	var makeBaseOut bytes.Buffer
	code := run([]string{"make_base"}, makeBaseInput, &makeBaseOut)
	require.Equal(0, code)

	_, err := os.Stat(snapFile)
	require.NoError(err)

	processInput := strings.NewReader(fmt.Sprintf(statRequestDoc, snapFile))
	var processOut bytes.Buffer
	code = run([]string{"process_requests"}, processInput, &processOut)
	require.Equal(0, code)

	var answers []map[string]interface{}
	require.NoError(json.Unmarshal(processOut.Bytes(), &answers))
	require.Len(answers, 4)
	require.Equal(float64(1), answers[0]["request_id"])
	require.Contains(answers[0], "buses")
	require.Contains(answers[1], "curvature")
	require.Contains(answers[2], "total_time")
	require.Contains(answers[3], "map")
}

func TestRunRejectsUnknownMode(t *testing.T) {
	require := require.New(t)
	var out bytes.Buffer
	code := run([]string{"bogus"}, strings.NewReader("{}"), &out)
	require.Equal(1, code)
}
