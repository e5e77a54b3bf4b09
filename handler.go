package main

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/ksev/txtdist/editdist"
	"go.uber.org/zap"
)

// metric is an edit distance function over two strings.
type metric func(source, target string) int

// metricNames lists the metrics the server can serve, in the order
// reported by /metrics.
var metricNames = []string{"levenshtein", "damerau_levenshtein"}

type distServer struct {
	logger     *zap.Logger
	metricName string
	metric     metric
	normName   string
	normalize  func(string) string
}

func (s *distServer) init() (h http.Handler, err error) {
	s.metric, err = metricByName(s.metricName)
	if err != nil {
		return
	}

	r := httprouter.New()
	r.POST("/distance", s.distance)
	r.GET("/info", s.info)
	r.GET("/metrics", s.metrics)
	return r, nil
}

func metricByName(name string) (m metric, err error) {
	switch name {
	case "levenshtein":
		m = editdist.Levenshtein
	case "damerau_levenshtein":
		m = editdist.DamerauLevenshtein
	default:
		err = fmt.Errorf("unknown metric %q", name)
	}
	return
}

// distance computes the distance between a pair of input strings.
func (s *distServer) distance(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var strs [2]string
	err := json.NewDecoder(r.Body).Decode(&strs)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	if s.normalize != nil {
		strs[0] = s.normalize(strs[0])
		strs[1] = s.normalize(strs[1])
	}

	d := s.metric(strs[0], strs[1])
	json.NewEncoder(w).Encode(struct {
		M string `json:"metric"`
		D int    `json:"distance"`
	}{
		s.metricName, d,
	})
}

// info sends some information about the server.
func (s *distServer) info(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	json.NewEncoder(w).Encode(map[string]interface{}{
		"metric":  s.metricName,
		"norm":    s.normName,
		"version": version,
	})
}

// metrics sends the list of supported metric names.
func (s *distServer) metrics(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	json.NewEncoder(w).Encode(metricNames)
}

func (s *distServer) writeError(w http.ResponseWriter, status int, err error) {
	s.logger.Debug("request failed",
		zap.Int("status", status),
		zap.Error(err))

	w.WriteHeader(status)
	json.NewEncoder(w).Encode(struct {
		Error string `json:"error"`
	}{
		err.Error(),
	})
}
