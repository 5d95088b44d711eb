package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"continuo/midiout"
	"continuo/model"
	"continuo/realize"
	"continuo/score"
)

var midiPath string

func init() {
	realizeCmd.Flags().StringVar(&midiPath, "midi", "", "also write the realization to this midi file")
	rootCmd.AddCommand(realizeCmd)
}

var realizeCmd = &cobra.Command{
	Use:   "realize <progression.json>",
	Short: "Realizes a progression",
	Long:  `Realizes a progression`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need a progression file...")
		}
		runRealize(args[0])
	},
}

func readProgression(path string) model.Progression {
	dat, err := os.ReadFile(path)
	if err != nil {
		panic("Could not read progression file: " + err.Error())
	}

	var prog model.Progression
	if err := json.Unmarshal(dat, &prog); err != nil {
		panic("Could not parse progression file: " + err.Error())
	}
	return prog
}

func runRealize(path string) {
	prog := readProgression(path)

	voicings, err := realize.Realize(prog, model.DefaultRanges())
	if err != nil {
		panic("Could not realize progression: " + err.Error())
	}

	for i, v := range voicings {
		fmt.Printf("Chord %v: %v\n", i+1, v)
	}

	for i := 1; i < len(voicings); i++ {
		if score.HasParallels(voicings[i-1], voicings[i]) {
			fmt.Printf("Warning: parallel motion between chords %v and %v\n", i, i+1)
		}
	}

	if midiPath != "" {
		if err := midiout.WriteFile(midiPath, voicings); err != nil {
			panic("Could not write midi file: " + err.Error())
		}
		fmt.Printf("Wrote %v\n", midiPath)
	}
}
