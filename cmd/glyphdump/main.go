// Command glyphdump prints the font and bitmap tables as ASCII art so glyph
// edits can be reviewed without flashing a board.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"tuner/fonts/bitmaps"
	"tuner/fonts/font6x8"
	"tuner/fonts/nibbledigits"
	"tuner/fonts/notetall"
)

func main() {
	var (
		table = flag.String("table", "all", "text|digits|notes|bitmaps|all.")
		on    = flag.String("on", "#", "Character for a lit LED.")
		off   = flag.String("off", ".", "Character for a dark LED.")
	)
	flag.Parse()

	d := dumper{on: (*on)[0], off: (*off)[0]}
	switch strings.ToLower(*table) {
	case "text":
		d.text()
	case "digits":
		d.digits()
	case "notes":
		d.notes()
	case "bitmaps":
		d.bitmaps()
	case "all":
		d.text()
		d.digits()
		d.notes()
		d.bitmaps()
	default:
		fmt.Fprintf(os.Stderr, "unknown table: %s\n", *table)
		os.Exit(2)
	}
}

type dumper struct {
	on, off byte
}

func (d dumper) rowArt(v byte, width int) string {
	var sb strings.Builder
	for bit := 0; bit < width; bit++ {
		if v&(0x80>>bit) != 0 {
			sb.WriteByte(d.on)
		} else {
			sb.WriteByte(d.off)
		}
	}
	return sb.String()
}

func (d dumper) text() {
	fmt.Println("== text font (6x8) ==")
	for ch := byte(' '); ch <= 'Z'; ch++ {
		fmt.Printf("-- %q --\n", ch)
		for row := 0; row < font6x8.Height; row++ {
			fmt.Println(d.rowArt(font6x8.Row(ch, row)<<2, 6))
		}
	}
}

func (d dumper) digits() {
	fmt.Println("== nibble digits (3x5) ==")
	names := []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9", "+", "-"}
	for i, name := range names {
		fmt.Printf("-- %s --\n", name)
		rows := nibbledigits.Rows(i)
		for _, r := range rows {
			fmt.Println(d.rowArt(r<<4, 3))
		}
	}
}

func (d dumper) notes() {
	fmt.Println("== tall note letters ==")
	letters := "CDEFGAB"
	for i := 0; i < len(letters); i++ {
		fmt.Printf("-- %c --\n", letters[i])
		for _, r := range notetall.Notes[i] {
			fmt.Println(d.rowArt(r<<5, 3))
		}
	}
	fmt.Println("-- flat / sharp --")
	for i := range notetall.Alterations {
		for _, r := range notetall.Alterations[i] {
			fmt.Println(d.rowArt(r<<5, 3))
		}
		fmt.Println()
	}
	fmt.Println("-- micro digits --")
	for i := range notetall.Micro {
		fmt.Printf("-- %d --\n", i)
		for _, r := range notetall.Micro[i] {
			fmt.Println(d.rowArt(r<<5, 3))
		}
	}
}

func (d dumper) bitmaps() {
	fmt.Println("== keyboard base image ==")
	d.frame(&bitmaps.Keyboard)
	fmt.Println("== boot logo ==")
	d.frame(&bitmaps.Logo)
}

// frame prints a 40-byte frame as the physical 40x8 matrix.
func (d dumper) frame(f *[40]byte) {
	for row := 0; row < 8; row++ {
		var sb strings.Builder
		for module := 0; module < 5; module++ {
			sb.WriteString(d.rowArt(f[module*8+row], 8))
		}
		fmt.Println(sb.String())
	}
}
