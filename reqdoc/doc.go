// Package reqdoc decodes the request document a process reads on
// stdin and encodes the answer document it writes to stdout, plus the
// base_requests document make_base consumes to seed a catalogue and
// router. Field names and shapes are grounded on the original source's
// json_reader.cpp/h.
package reqdoc
