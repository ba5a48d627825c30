package postgres

import (
	"context"
	"sync/atomic"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/supplychain-console/pkg/config"
)

// Session conexión dedicada a una sola petición. No se comparte ni se reutiliza:
// cada operación de repositorio adquiere la suya y la libera en todas las salidas.
type Session struct {
	conn *pgx.Conn
}

// Conn expone la conexión pgx subyacente.
func (s *Session) Conn() *pgx.Conn {
	return s.conn
}

// Provider abre y cierra sesiones contra PostgreSQL a partir de la configuración.
// Lleva contadores de adquisición/liberación para poder verificar que ningún
// camino de salida deja una sesión sin cerrar.
type Provider struct {
	cfg      config.DBConfig
	acquired atomic.Int64
	released atomic.Int64
}

// NewProvider construye el proveedor de sesiones.
func NewProvider(cfg config.DBConfig) *Provider {
	return &Provider{cfg: cfg}
}

// Acquire abre una conexión dedicada y registra el codec NUMERIC -> decimal.Decimal.
// Las fallas se clasifican: credenciales inválidas, base de datos inexistente u otro
// error de conectividad (ver classifyConnError).
func (p *Provider) Acquire(ctx context.Context) (*Session, error) {
	conn, err := pgx.Connect(ctx, p.cfg.DSN())
	if err != nil {
		return nil, classifyConnError(err)
	}
	pgxdecimal.Register(conn.TypeMap())
	p.acquired.Add(1)
	return &Session{conn: conn}, nil
}

// Release cierra la sesión. Es idempotente y tolera sesión nil (por ejemplo,
// cuando Acquire falló); el error secundario del cierre se descarta.
func (p *Provider) Release(s *Session) {
	if s == nil || s.conn == nil {
		return
	}
	_ = s.conn.Close(context.Background())
	s.conn = nil
	p.released.Add(1)
}

// Stats devuelve cuántas sesiones se han adquirido y liberado. La diferencia
// entre ambos valores es el número de sesiones filtradas.
func (p *Provider) Stats() (acquired, released int64) {
	return p.acquired.Load(), p.released.Load()
}
