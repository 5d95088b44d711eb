package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"continuo/constants"
	"continuo/model"
	"continuo/realize"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serves",
	Long:  `serves`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: msg})
}

func HandleRealize(w http.ResponseWriter, r *http.Request) {
	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, 400, "Could not read request body: "+err.Error())
		return
	}

	var input model.RealizeRequestBody
	if err := json.Unmarshal(reqBody, &input); err != nil {
		writeError(w, 400, "Could not unmarshal request body: "+err.Error())
		return
	}

	if len(input.Chords) == 0 {
		writeError(w, 400, "Need at least one chord...")
		return
	}

	voicings, err := realize.Realize(input.Chords, model.DefaultRanges())
	if err != nil {
		var nvv realize.NoValidVoicingError
		if errors.As(err, &nvv) {
			writeError(w, 422, err.Error())
			return
		}
		writeError(w, 500, err.Error())
		return
	}

	res := model.RealizeResponse{Id: uuid.New().String(), Voicings: voicings}
	for _, v := range voicings {
		res.Names = append(res.Names, v.String())
	}
	json.NewEncoder(w).Encode(res)
}

func serve() {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/realize", HandleRealize).Methods("POST")
	handler := cors.Default().Handler(router)
	fmt.Printf("Listening on %v\n", constants.GetPort())
	log.Fatal(http.ListenAndServe(constants.GetPort(), handler))
}
