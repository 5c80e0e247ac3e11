package reporting

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresSource computes dashboard aggregates straight from the store.
type PostgresSource struct {
	pool *pgxpool.Pool
}

func NewPostgresSource(pool *pgxpool.Pool) *PostgresSource {
	return &PostgresSource{pool: pool}
}

func (s *PostgresSource) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{
		ProjectsByStatus:   map[string]int64{},
		YLinesByStatus:     map[string]int64{},
		YLineValueByStatus: map[string]float64{},
		CSPLOBsByType:      map[string]int64{},
		GeneratedAt:        time.Now().UTC(),
	}

	const projectsQ = `SELECT status, COUNT(*) FROM projects GROUP BY status;`
	rows, err := s.pool.Query(ctx, projectsQ)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var status string
		var n int64
		if err := rows.Scan(&status, &n); err != nil {
			rows.Close()
			return nil, err
		}
		stats.ProjectsByStatus[status] = n
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	const yLinesQ = `
SELECT status, COUNT(*), COALESCE(SUM(estimated_value), 0)
FROM y_lines
GROUP BY status;
`
	rows, err = s.pool.Query(ctx, yLinesQ)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var status string
		var n int64
		var total float64
		if err := rows.Scan(&status, &n, &total); err != nil {
			rows.Close()
			return nil, err
		}
		stats.YLinesByStatus[status] = n
		stats.YLineValueByStatus[status] = total
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	const cspLOBsQ = `SELECT lob_type, COUNT(*) FROM csp_lob_mappings GROUP BY lob_type;`
	rows, err = s.pool.Query(ctx, cspLOBsQ)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var lob string
		var n int64
		if err := rows.Scan(&lob, &n); err != nil {
			rows.Close()
			return nil, err
		}
		stats.CSPLOBsByType[lob] = n
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}
