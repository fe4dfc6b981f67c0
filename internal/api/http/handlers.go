package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/provinciareal/dashboard/internal/dashboard"
	"github.com/provinciareal/dashboard/internal/entity"
	gerr "github.com/provinciareal/dashboard/internal/errors"
	"github.com/provinciareal/dashboard/internal/middleware"
	"github.com/provinciareal/dashboard/internal/timezone"
	"github.com/shopspring/decimal"
)

// syncRemainingHeader reports the manual syncs left in the current hour.
const syncRemainingHeader = "X-Sync-Remaining"

type errorResponse struct {
	Error string `json:"error"`
}

type idResponse struct {
	Id int `json:"id"`
}

type rateResponse struct {
	Date   string          `json:"date"`
	UsdBrl decimal.Decimal `json:"usd_brl"`
}

type rateRangeResponse struct {
	From  string                     `json:"from"`
	To    string                     `json:"to"`
	Rates map[string]decimal.Decimal `json:"rates"`
}

// maxRateRangeDays bounds a rate range request; every date may cost an upstream call.
const maxRateRangeDays = 31

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Default().Error("can't encode response", slog.String("err", err.Error()))
	}
}

// writeError maps sentinel errors to status codes. Unknown errors are logged
// and reported without detail.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, gerr.ErrInvalidPeriod),
		errors.Is(err, gerr.ErrInvalidTimezone),
		errors.Is(err, gerr.ErrInvalidAlert):
		status = http.StatusBadRequest
	case errors.Is(err, gerr.ErrAlertNotFound):
		status = http.StatusNotFound
	case errors.Is(err, gerr.ErrSyncInProgress):
		status = http.StatusConflict
	case errors.Is(err, gerr.ErrRateLimited):
		status = http.StatusTooManyRequests
	}

	msg := err.Error()
	if status == http.StatusInternalServerError {
		slog.Default().ErrorContext(r.Context(), "request failed",
			slog.String("path", r.URL.Path),
			slog.String("request_id", middleware.GetRequestID(r.Context())),
			slog.String("err", err.Error()),
		)
		msg = http.StatusText(status)
	}
	writeJSON(w, status, errorResponse{Error: msg})
}

func queryOf(r *http.Request) dashboard.Query {
	v := r.URL.Query()
	return dashboard.Query{
		From:     v.Get("from"),
		To:       v.Get("to"),
		Preset:   v.Get("preset"),
		Timezone: v.Get("tz"),
	}
}

func (s *Server) getMetrics(w http.ResponseWriter, r *http.Request) {
	m, err := s.dash.Metrics(r.Context(), queryOf(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (s *Server) getRealtime(w http.ResponseWriter, r *http.Request) {
	m, err := s.dash.Realtime(r.Context(), r.URL.Query().Get("tz"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (s *Server) getUTM(w http.ResponseWriter, r *http.Request) {
	ua, err := s.dash.UTM(r.Context(), queryOf(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ua)
}

func (s *Server) getActiveAlerts(w http.ResponseWriter, r *http.Request) {
	rep, err := s.dash.ActiveAlerts(r.Context(), r.URL.Query().Get("tz"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rep)
}

func (s *Server) listAlertConfigs(w http.ResponseWriter, r *http.Request) {
	configs, err := s.alerts.ListAlertConfigs(r.Context(), false)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if configs == nil {
		configs = []entity.AlertConfig{}
	}
	writeJSON(w, http.StatusOK, configs)
}

// decodeAlert reads an alert config body. Enabled defaults to true when the
// field is absent.
func decodeAlert(r *http.Request) (*entity.AlertConfigInsert, error) {
	ac := &entity.AlertConfigInsert{Enabled: true}
	if err := json.NewDecoder(r.Body).Decode(ac); err != nil {
		return nil, fmt.Errorf("%w: %v", gerr.ErrInvalidAlert, err)
	}
	if err := ac.Validate(); err != nil {
		return nil, err
	}
	return ac, nil
}

func alertId(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: bad id %q", gerr.ErrInvalidAlert, chi.URLParam(r, "id"))
	}
	return id, nil
}

func (s *Server) addAlertConfig(w http.ResponseWriter, r *http.Request) {
	ac, err := decodeAlert(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	id, err := s.alerts.AddAlertConfig(r.Context(), ac)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, idResponse{Id: id})
}

func (s *Server) updateAlertConfig(w http.ResponseWriter, r *http.Request) {
	id, err := alertId(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	ac, err := decodeAlert(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := s.alerts.UpdateAlertConfig(r.Context(), id, ac); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) deleteAlertConfig(w http.ResponseWriter, r *http.Request) {
	id, err := alertId(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := s.alerts.DeleteAlertConfig(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// runSync refreshes the caches for [from, to]. Without dates it uses the
// worker's lookback window; a bare date covers that whole day in BR.
func (s *Server) runSync(w http.ResponseWriter, r *http.Request) {
	ip := middleware.GetClientIP(r.Context())
	if err := s.limiter.CheckSync(ip); err != nil {
		writeError(w, r, err)
		return
	}
	w.Header().Set(syncRemainingHeader, strconv.Itoa(s.limiter.SyncRemaining(ip)))

	from, to := s.sync.Window()
	q := r.URL.Query()
	if q.Get("from") != "" || q.Get("to") != "" {
		fromDay := q.Get("from")
		if fromDay == "" {
			writeError(w, r, fmt.Errorf("%w: to without from", gerr.ErrInvalidPeriod))
			return
		}
		toDay := q.Get("to")
		if toDay == "" {
			toDay = fromDay
		}
		rng, err := timezone.DateRange(fromDay, toDay, timezone.BR)
		if err != nil {
			writeError(w, r, err)
			return
		}
		from, to = rng.Start, rng.End
	}

	res, err := s.sync.RunOnce(r.Context(), from, to)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// getRate serves one date's rate, or one rate per date for ?from=&to=.
func (s *Server) getRate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if q.Get("from") != "" || q.Get("to") != "" {
		s.getRateRange(w, r, q.Get("from"), q.Get("to"))
		return
	}

	date := time.Now().In(timezone.BR.Location())
	if d := r.URL.Query().Get("date"); d != "" {
		parsed, err := time.ParseInLocation(time.DateOnly, d, timezone.BR.Location())
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: bad date %q", gerr.ErrInvalidPeriod, d))
			return
		}
		date = parsed
	}
	writeJSON(w, http.StatusOK, rateResponse{
		Date:   date.Format(time.DateOnly),
		UsdBrl: s.rates.Rate(r.Context(), date),
	})
}

func (s *Server) getRateRange(w http.ResponseWriter, r *http.Request, from, to string) {
	if from == "" || to == "" {
		writeError(w, r, fmt.Errorf("%w: rate range needs from and to", gerr.ErrInvalidPeriod))
		return
	}
	rng, err := timezone.DateRange(from, to, timezone.BR)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if days := len(rng.Dates(timezone.BR)); days > maxRateRangeDays {
		writeError(w, r, fmt.Errorf("%w: rate range of %d days exceeds %d", gerr.ErrInvalidPeriod, days, maxRateRangeDays))
		return
	}
	writeJSON(w, http.StatusOK, rateRangeResponse{
		From:  from,
		To:    to,
		Rates: s.rates.RateRange(r.Context(), rng.Start, rng.End),
	})
}
