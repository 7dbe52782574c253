// Package postgres PostgreSQL 백엔드에 대한 요청 단위 접속과 조회를 제공합니다.
//
// 커넥션 풀을 유지하지 않고 매 요청마다 접속을 열고 닫습니다. 접속 수립에
// 실패하면 Unavailable 타입의 에러를 반환하며, 접속 후의 호출 실패는
// ExecutionFailed 타입으로 분류됩니다.
package postgres

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"

	"github.com/darkkaiser/homelab-api-server/internal/config"
	apperrors "github.com/darkkaiser/homelab-api-server/internal/pkg/errors"
)

// recentUsersQuery 사용자 목록 조회 쿼리입니다. 최근 생성 순으로 최대 10건을 반환합니다.
const recentUsersQuery = `SELECT * FROM users ORDER BY created_at DESC LIMIT 10`

// Connector PostgreSQL 접속 정보를 보관하며 요청 단위의 접속 핸들을 생성합니다.
type Connector struct {
	cfg config.PostgresConfig
}

// NewConnector Connector 인스턴스를 생성합니다.
func NewConnector(cfg config.PostgresConfig) *Connector {
	return &Connector{cfg: cfg}
}

// connect 데이터베이스에 접속하고 연결 가능 여부를 확인합니다.
//
// sql.Open은 실제 접속을 수립하지 않으므로 PingContext로 연결을 검증합니다.
// 실패 시 Unavailable 타입의 에러를 반환하며, 호출자는 이를 503 응답으로 변환해야 합니다.
func (c *Connector) connect(ctx context.Context) (*sql.DB, error) {
	db, err := sql.Open("postgres", c.cfg.DSN())
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.Unavailable, "PostgreSQL 접속 핸들 생성에 실패했습니다")
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, apperrors.Wrap(err, apperrors.Unavailable, "PostgreSQL에 연결할 수 없습니다")
	}

	return db, nil
}

// Probe 최소한의 라이브니스 쿼리(SELECT 1)로 백엔드 연결 상태를 확인합니다.
func (c *Connector) Probe(ctx context.Context) error {
	db, err := c.connect(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	var one int
	if err := db.QueryRowContext(ctx, "SELECT 1").Scan(&one); err != nil {
		return apperrors.Wrap(err, apperrors.ExecutionFailed, "PostgreSQL 라이브니스 쿼리 실행에 실패했습니다")
	}

	return nil
}

// RecentUsers 최근 생성된 사용자 레코드를 최대 10건 조회하여 반환합니다.
//
// 행은 컬럼명을 키로 하는 맵의 순서 있는 슬라이스로 반환되며, 드라이버가
// []byte로 돌려주는 텍스트 값은 JSON 직렬화를 위해 문자열로 정규화합니다.
func (c *Connector) RecentUsers(ctx context.Context) ([]map[string]any, error) {
	db, err := c.connect(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, recentUsersQuery)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ExecutionFailed, "사용자 목록 쿼리 실행에 실패했습니다")
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ExecutionFailed, "쿼리 결과의 컬럼 정보를 읽을 수 없습니다")
	}

	users := make([]map[string]any, 0)
	for rows.Next() {
		values := make([]any, len(columns))
		scanTargets := make([]any, len(columns))
		for i := range values {
			scanTargets[i] = &values[i]
		}

		if err := rows.Scan(scanTargets...); err != nil {
			return nil, apperrors.Wrap(err, apperrors.ExecutionFailed, "사용자 레코드를 읽는 중 오류가 발생했습니다")
		}

		users = append(users, rowToMap(columns, values))
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ExecutionFailed, "사용자 목록을 순회하는 중 오류가 발생했습니다")
	}

	return users, nil
}

// rowToMap 스캔된 행 값을 컬럼명 기준의 맵으로 변환합니다.
func rowToMap(columns []string, values []any) map[string]any {
	row := make(map[string]any, len(columns))
	for i, column := range columns {
		// lib/pq는 텍스트 계열 컬럼을 []byte로 반환하므로 문자열로 변환한다
		if b, ok := values[i].([]byte); ok {
			row[column] = string(b)
			continue
		}
		row[column] = values[i]
	}
	return row
}
