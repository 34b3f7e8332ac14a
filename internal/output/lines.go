// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-only

package output

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
)

// MapResult is the --json payload of the map and demo commands.
type MapResult struct {
	Transform string `json:"transform"`
	Count     int    `json:"count"`
	Source    []int  `json:"source"`
	Result    []int  `json:"result"`
}

// Integers writes values to stdout, one decimal integer per line, in order.
func Integers(values []int) error {
	return IntegersTo(os.Stdout, values)
}

// IntegersTo writes values to w, one decimal integer per line, in order.
// Nothing is written for an empty slice.
func IntegersTo(w io.Writer, values []int) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 24)
	for _, v := range values {
		buf = strconv.AppendInt(buf[:0], int64(v), 10)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
