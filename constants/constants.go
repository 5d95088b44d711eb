package constants

import "os"

func GetPort() string {
	port := os.Getenv("PORT")
	if port != "" {
		return ":" + port
	}
	return ":8080"
}

// quarter note resolution for rendered midi files
const TicksPerQuarter = 960

// each realized chord is held for a whole note
const ChordTicks = TicksPerQuarter * 4

const RenderChannel = 0
const RenderVelocity = 90
