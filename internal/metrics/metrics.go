package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
)

const (
	ResultAccepted = "accepted"
	ResultOccupied = "occupied"
	ResultFinished = "finished"
	ResultInvalid  = "invalid"
)

type Metrics struct {
	Moves         *prometheus.CounterVec
	GamesFinished *prometheus.CounterVec
	Resets        prometheus.Counter
}

// New registers the game counters on reg.
func New(reg prometheus.Registerer) *Metrics {
	that := &Metrics{
		Moves: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tictactoe_moves_total",
				Help: "Moves received, by whether they were applied or ignored",
			},
			[]string{"result"},
		),
		GamesFinished: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tictactoe_games_finished_total",
				Help: "Games that reached a terminal outcome",
			},
			[]string{"outcome"},
		),
		Resets: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "tictactoe_resets_total",
				Help: "Games reset by the players",
			},
		),
	}

	reg.MustRegister(that.Moves, that.GamesFinished, that.Resets)

	return that
}

// ObserveMove counts one move. ignored is the reason the engine rejected it, or nil.
func (that *Metrics) ObserveMove(game entity.Game, ignored error) {
	that.Moves.WithLabelValues(MoveResult(ignored)).Inc()

	if ignored == nil && game.IsFinished() {
		that.GamesFinished.WithLabelValues(string(game.Outcome)).Inc()
	}
}

func (that *Metrics) ObserveReset() {
	that.Resets.Inc()
}

// MoveResult maps an ignore reason to its label value.
func MoveResult(ignored error) string {
	if ignored == nil {
		return ResultAccepted
	}

	return apperror.Reason(ignored)
}
