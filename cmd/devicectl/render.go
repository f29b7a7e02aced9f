package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/micromdm/nanodevice/device"

	"github.com/fatih/color"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	dim    = color.New(color.Faint).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
)

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// renderName colors a device name by what kind of device it is.
func renderName(d device.Device) string {
	switch {
	case d.Real().IsUnknown():
		return yellow(d.String())
	case d.IsSimulator():
		return cyan(d.String())
	}
	return green(d.String())
}

func renderInfo(w io.Writer, d device.Device) {
	info := d.Info()
	fmt.Fprintln(w, bold(renderName(d)))
	row := func(k string, v interface{}) {
		fmt.Fprintf(w, "  %-14s %v\n", dim(k), v)
	}
	if len(info.Identifiers) > 0 {
		row("identifiers", strings.Join(info.Identifiers, ", "))
	}
	if info.Family != "" {
		row("family", info.Family)
	}
	row("cpu", info.CPU)
	if info.Diagonal > 0 {
		row("diagonal", fmt.Sprintf("%g\"", info.Diagonal))
	}
	if info.ScreenRatio.Width > 0 {
		row("screen ratio", fmt.Sprintf("%g:%g", info.ScreenRatio.Width, info.ScreenRatio.Height))
	}
	if info.PPI > 0 {
		row("ppi", info.PPI)
	}
	if len(info.Cameras) > 0 {
		cams := make([]string, len(info.Cameras))
		for i, c := range info.Cameras {
			cams[i] = string(c)
		}
		row("cameras", strings.Join(cams, ", "))
	}
	if len(info.Groups) > 0 {
		row("groups", strings.Join(info.Groups, ", "))
	}
}

// renderOrder prints the result of comparing a with b.
func renderOrder(w io.Writer, a, b string, cmp int, equal bool) {
	op := "=="
	switch {
	case cmp < 0:
		op = "<"
	case cmp > 0:
		op = ">"
	}
	fmt.Fprintf(w, "%s %s %s\n", a, bold(op), b)
	if cmp == 0 && !equal {
		fmt.Fprintln(w, dim("ordered equally but not equal"))
	}
}
