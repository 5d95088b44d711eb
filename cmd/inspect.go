package cmd

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"continuo/model"
	"continuo/score"
	"continuo/voicing"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <bass> <tone> [tone...]",
	Short: "Inspects candidates for one chord",
	Long:  `Inspects candidates for one chord`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 2 {
			panic("Need a bass and at least one chord tone...")
		}
		inspect(args)
	},
}

func parsePitch(arg string) model.Pitch {
	num, err := strconv.ParseUint(arg, 10, 8)
	if err != nil {
		panic("Could not parse pitch: " + err.Error())
	}
	return model.Pitch(num)
}

func inspect(args []string) {
	spec := model.ChordSpec{Bass: parsePitch(args[0])}
	for _, arg := range args[1:] {
		spec.Tones = append(spec.Tones, parsePitch(arg))
	}

	ranges := model.DefaultRanges()
	candidates := voicing.Generate(spec, ranges)
	fmt.Printf("candidates: %v\n", len(candidates))

	type scored struct {
		v model.Voicing
		s float64
	}
	var all []scored
	for _, c := range candidates {
		all = append(all, scored{v: c, s: score.Score(c, nil, spec.Bass, ranges)})
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].s > all[j].s
	})

	for i, sc := range all {
		if i >= 10 {
			break
		}
		fmt.Printf("%v (score %.1f)\n", sc.v, sc.s)
	}
}
