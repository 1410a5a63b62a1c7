// Copyright 2025 The lyaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Package lyaml decodes a YAML stream into a sequence of parse events.
//
// A Decoder drives the YAML parser one event at a time and translates each
// raw event into one of ten event structs, each carrying its start and end
// marks and the payload of its kind:
//
//	d, err := lyaml.OpenString("a: 1\n")
//	if err != nil {
//		return err
//	}
//	defer d.Close()
//	for ev, err := range d.All() {
//		if err != nil {
//			return err
//		}
//		fmt.Println(lyaml.FormatEvent(ev))
//	}
//
// Events can also be rendered as generic records with Record, which is the
// shape their JSON and YAML encodings take.
//
// The parser is released exactly once: when the stream is exhausted, when a
// failure is reported, when Close is called, or when an abandoned Decoder
// is garbage collected.
package lyaml
