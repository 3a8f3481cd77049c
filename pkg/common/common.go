package common

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Leandrotvr/foro-front/pkg/logger"
)

type Msg struct {
	Message string `json:"message"`
}

func WriteMsg(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	WriteRespJSON(w, Msg{msg})
}

func WriteRespJSON(w http.ResponseWriter, data interface{}) {
	resp, err := json.Marshal(data)
	if err != nil {
		logger.Log(context.Background()).Errorf("common: JSON marshaling failed: %v", err)
		WriteMsg(w, "response failed", http.StatusInternalServerError)
		return
	}

	if w.Header().Get("Content-Type") == "" {
		w.Header().Set("Content-Type", "application/json")
	}
	_, err = w.Write(resp)
	if err != nil {
		logger.Log(context.Background()).Errorf("common: failed writing response: %v", err)
	}
}
