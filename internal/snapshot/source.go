package snapshot

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/classiccuts/booking-api/internal/domain/availability"
	"github.com/classiccuts/booking-api/internal/domain/booking"
)

// Day é o par consistente de entradas do calculador: agendamentos e bloqueios
// do mesmo barbeiro na mesma data, lidos juntos.
type Day struct {
	Appointments []availability.AppointmentSpan
	Blocks       []availability.BlockedSpan
}

const (
	channelAppointments = "agenda:appointments"
	channelBlocks       = "agenda:blocks"
)

// Source coalesce os dois fluxos de atualização (agendamentos e bloqueios) em
// um snapshot por (barbeiro, data): cache de último valor para cada fluxo,
// invalidado por mensagens redis publicadas pelos caminhos de escrita. A
// leitura refaz só a metade invalidada, sempre sob o mesmo lock: o
// calculador nunca enxerga um par meio atualizado.
type Source struct {
	repo booking.Repository
	rdb  *redis.Client
	log  *zap.Logger

	mu       sync.Mutex
	cache    map[string]*entry
	onChange func(barberID uint, date string)
}

type entry struct {
	appointments []availability.AppointmentSpan
	blocks       []availability.BlockedSpan
	appsFresh    bool
	blocksFresh  bool
}

// NewSource aceita rdb nil: sem redis o cache ainda funciona para o processo
// local, invalidado diretamente pelos caminhos de escrita.
func NewSource(repo booking.Repository, rdb *redis.Client, log *zap.Logger) *Source {
	return &Source{
		repo:  repo,
		rdb:   rdb,
		log:   log,
		cache: make(map[string]*entry),
	}
}

// OnChange registra o gatilho de recomputação: disparado uma vez por
// invalidação, venha ela de qualquer um dos dois fluxos.
func (s *Source) OnChange(fn func(barberID uint, date string)) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

func dayKey(barberID uint, date string) string {
	return fmt.Sprintf("%d:%s", barberID, date)
}

// Load devolve o snapshot do dia, buscando no repositório apenas os fluxos
// marcados como velhos. O lock cobre as duas buscas de propósito: nenhuma
// invalidação entra entre uma metade e a outra.
func (s *Source) Load(ctx context.Context, barberID uint, date string) (Day, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := dayKey(barberID, date)
	e, ok := s.cache[key]
	if !ok {
		e = &entry{}
		s.cache[key] = e
	}

	if !e.appsFresh {
		apps, err := s.repo.ListAppointments(ctx, barberID, date)
		if err != nil {
			return Day{}, err
		}
		e.appointments = apps
		e.appsFresh = true
	}

	if !e.blocksFresh {
		blocks, err := s.repo.ListBlockedSlots(ctx, barberID, date)
		if err != nil {
			return Day{}, err
		}
		e.blocks = blocks
		e.blocksFresh = true
	}

	day := Day{
		Appointments: append([]availability.AppointmentSpan(nil), e.appointments...),
		Blocks:       append([]availability.BlockedSpan(nil), e.blocks...),
	}
	return day, nil
}

// NotifyAppointmentsChanged é chamado pelos caminhos de escrita após criar ou
// cancelar um agendamento. Invalida localmente e propaga via redis para os
// demais nós.
func (s *Source) NotifyAppointmentsChanged(ctx context.Context, barberID uint, date string) {
	s.invalidate(barberID, date, channelAppointments)
	s.publish(ctx, channelAppointments, barberID, date)
}

// NotifyBlocksChanged é o equivalente para bloqueios criados/removidos.
func (s *Source) NotifyBlocksChanged(ctx context.Context, barberID uint, date string) {
	s.invalidate(barberID, date, channelBlocks)
	s.publish(ctx, channelBlocks, barberID, date)
}

func (s *Source) invalidate(barberID uint, date string, channel string) {
	s.mu.Lock()
	if e, ok := s.cache[dayKey(barberID, date)]; ok {
		switch channel {
		case channelAppointments:
			e.appsFresh = false
		case channelBlocks:
			e.blocksFresh = false
		}
	}
	fn := s.onChange
	s.mu.Unlock()

	if fn != nil {
		fn(barberID, date)
	}
}

func (s *Source) publish(ctx context.Context, channel string, barberID uint, date string) {
	if s.rdb == nil {
		return
	}

	msg := fmt.Sprintf("%d:%s", barberID, date)
	if err := s.rdb.Publish(ctx, channel+":"+msg, msg).Err(); err != nil {
		s.log.Warn("falha ao publicar invalidação de agenda",
			zap.String("channel", channel),
			zap.Error(err),
		)
	}
}

// Listen consome as invalidações publicadas por outros nós até o contexto
// encerrar. Deve rodar em goroutine própria.
func (s *Source) Listen(ctx context.Context) {
	if s.rdb == nil {
		return
	}

	sub := s.rdb.PSubscribe(ctx, channelAppointments+":*", channelBlocks+":*")
	defer sub.Close()

	for {
		msg, err := sub.ReceiveMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			s.log.Warn("assinatura de invalidação interrompida", zap.Error(err))
			return
		}

		barberID, date, channel, ok := parseInvalidation(msg.Channel)
		if !ok {
			continue
		}
		s.invalidate(barberID, date, channel)
	}
}

func parseInvalidation(channel string) (uint, string, string, bool) {
	var prefix string
	switch {
	case strings.HasPrefix(channel, channelAppointments+":"):
		prefix = channelAppointments
	case strings.HasPrefix(channel, channelBlocks+":"):
		prefix = channelBlocks
	default:
		return 0, "", "", false
	}

	rest := strings.TrimPrefix(channel, prefix+":")
	parts := strings.SplitN(rest, ":", 2)
	if len(parts) != 2 {
		return 0, "", "", false
	}

	id, err := strconv.ParseUint(parts[0], 10, 64)
	if err != nil {
		return 0, "", "", false
	}

	return uint(id), parts[1], prefix, true
}
