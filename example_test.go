// Copyright 2025 The lyaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package lyaml_test

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"

	"github.com/gvvaughan/lyaml"
)

func ExampleOpenString() {
	d, err := lyaml.OpenString("- a\n- &x b\n- *x\n")
	if err != nil {
		panic(err)
	}
	defer d.Close()

	for ev, err := range d.All() {
		if err != nil {
			panic(err)
		}
		fmt.Println(lyaml.FormatEvent(ev))
	}
	// Output:
	// +STR
	// +DOC
	// +SEQ
	// =VAL :a
	// =VAL &x :b
	// =ALI *x
	// -SEQ
	// -DOC
	// -STR
}

func ExampleDecoder_Next() {
	d, err := lyaml.OpenString("{a: 1")
	if err != nil {
		panic(err)
	}
	for {
		ev, err := d.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			fmt.Println(err)
			break
		}
		fmt.Println(ev.Type())
	}
	// Output:
	// STREAM-START
	// DOCUMENT-START
	// MAPPING-START
	// SCALAR
	// SCALAR
	// lyaml: parser error: while parsing a flow mapping at line 1, column 1: line 2, column 1: did not find expected ',' or '}'
}

func ExampleRecord() {
	events, err := lyaml.Events([]byte("key: value\n"))
	if err != nil {
		panic(err)
	}
	out, err := json.Marshal(lyaml.Record(events[3]))
	if err != nil {
		panic(err)
	}
	fmt.Println(string(out))
	// Output:
	// {"end_mark":{"column":3,"index":3,"line":0},"plain_implicit":true,"quoted_implicit":false,"start_mark":{"column":0,"index":0,"line":0},"type":"SCALAR","value":"key"}
}
