package recording

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/arizon-dashboard-api/infrastructure/storage"
	"github.com/vfg2006/arizon-dashboard-api/infrastructure/storage/mocks"
	"github.com/vfg2006/arizon-dashboard-api/internal/domain"
	"github.com/vfg2006/arizon-dashboard-api/internal/usecases/validating"
	"github.com/vfg2006/arizon-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/arizon-dashboard-api/pkg/utils"
	"go.uber.org/mock/gomock"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func newTestService(t *testing.T, kv storage.KeyValueStore) (Recorder, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)}
	return NewService(kv, validating.NewService(), Config{}, WithClock(clock.Now)), clock
}

func assertCode(t *testing.T, err error, sentinel error, code string) {
	t.Helper()
	require.Error(t, err)
	assert.True(t, errors.Is(err, sentinel), "esperado %v, obtido %v", sentinel, err)

	var recordErr *RecordError
	require.True(t, errors.As(err, &recordErr))
	assert.Equal(t, code, recordErr.Code)
}

func TestNewService_EstadoInicial(t *testing.T) {
	svc, _ := newTestService(t, nil)

	months := svc.Months()
	require.Len(t, months, 12)
	assert.Equal(t, "Enero", months[0].Name)
	assert.Equal(t, "Diciembre", months[11].Name)

	for _, bucket := range months {
		require.NotNil(t, bucket.Consolidated)
		for _, week := range bucket.Weeks {
			assert.True(t, week.IsEmpty())
		}
	}

	enero, err := svc.Consolidated("Enero")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultGastosFijos, enero.GastosFijos)
	assert.Equal(t, domain.DefaultInversionTotal, svc.Year().InversionTotal)
	assert.Equal(t, 48, svc.PendingWeeks())
}

func TestSubmitWeek(t *testing.T) {
	tests := []struct {
		name      string
		month     string
		week      int
		candidate domain.Candidate
		sentinel  error
		code      string
		issues    int
	}{
		{
			name:      "Semana válida é gravada",
			month:     "Enero",
			week:      0,
			candidate: domain.Candidate{"leadsRecibidos": "10", "leadsCalificados": "5"},
		},
		{
			name:      "Semana com inconsistência é rejeitada",
			month:     "Enero",
			week:      0,
			candidate: domain.Candidate{"leadsRecibidos": "10", "leadsCalificados": "20"},
			sentinel:  ErrValidationFailed,
			code:      apiErrors.ErrValidationFailed,
			issues:    1,
		},
		{
			name:      "Mês inexistente",
			month:     "Smarch",
			week:      0,
			candidate: domain.Candidate{"leadsRecibidos": "10"},
			sentinel:  ErrUnknownMonth,
			code:      apiErrors.ErrUnknownMonth,
		},
		{
			name:      "Semana fora do intervalo",
			month:     "Enero",
			week:      4,
			candidate: domain.Candidate{"leadsRecibidos": "10"},
			sentinel:  ErrInvalidWeekIndex,
			code:      apiErrors.ErrInvalidWeek,
		},
		{
			name:      "Semana negativa",
			month:     "Enero",
			week:      -1,
			candidate: domain.Candidate{"leadsRecibidos": "10"},
			sentinel:  ErrInvalidWeekIndex,
			code:      apiErrors.ErrInvalidWeek,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestService(t, storage.NewMemoryStore())

			record, issues, err := svc.SubmitWeek(context.Background(), tt.month, tt.week, tt.candidate)
			assert.Len(t, issues, tt.issues)

			if tt.sentinel != nil {
				assertCode(t, err, tt.sentinel, tt.code)
				assert.Nil(t, record)
				assert.Equal(t, 48, svc.PendingWeeks())
				return
			}

			require.NoError(t, err)
			v, ok := record.Get(domain.FieldLeadsRecibidos)
			assert.True(t, ok)
			assert.Equal(t, 10.0, v)

			consolidated, err := svc.Consolidated(tt.month)
			require.NoError(t, err)
			assert.Equal(t, 10.0, consolidated.LeadsRecibidos)
			assert.Equal(t, 5.0, consolidated.LeadsCalificados)
			assert.Equal(t, 5.0, svc.Year().LeadsCalificados)
		})
	}
}

func TestCommit_MesclaComSemanaExistente(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, nil)

	_, err := svc.Commit(ctx, "Febrero", 1, domain.Candidate{"leadsAds": "10", "cobranzaUSD": "300"})
	require.NoError(t, err)
	assert.False(t, svc.UndoStatus().Available, "semana vazia não gera desfazer")

	record, err := svc.Commit(ctx, "Febrero", 1, domain.Candidate{"cobranzaUSD": "500", "leadsOrganico": "", "ticketsAbiertos": "3.9"})
	require.NoError(t, err)

	ads, _ := record.Get(domain.FieldLeadsAds)
	usd, _ := record.Get(domain.FieldCobranzaUSD)
	tickets, _ := record.Get(domain.FieldTicketsAbiertos)
	_, organico := record.Get(domain.FieldLeadsOrganico)

	assert.Equal(t, 10.0, ads)
	assert.Equal(t, 500.0, usd)
	assert.Equal(t, 3.0, tickets, "campos inteiros são truncados")
	assert.False(t, organico, "campo vazio não é informado")
	assert.True(t, svc.UndoStatus().Available)
}

func TestUndo(t *testing.T) {
	ctx := context.Background()

	t.Run("Restaura a semana anterior e recalcula", func(t *testing.T) {
		svc, _ := newTestService(t, nil)

		_, err := svc.Commit(ctx, "Marzo", 2, domain.Candidate{"cobranzaUSD": "100"})
		require.NoError(t, err)
		_, err = svc.Commit(ctx, "Marzo", 2, domain.Candidate{"cobranzaUSD": "900"})
		require.NoError(t, err)

		consolidated, _ := svc.Consolidated("Marzo")
		assert.Equal(t, 900.0, consolidated.CobranzaUSD)

		slot, record, err := svc.Undo(ctx)
		require.NoError(t, err)
		assert.Equal(t, domain.WeekSlot{Month: "Marzo", Week: 2}, slot)
		usd, _ := record.Get(domain.FieldCobranzaUSD)
		assert.Equal(t, 100.0, usd)

		consolidated, _ = svc.Consolidated("Marzo")
		assert.Equal(t, 100.0, consolidated.CobranzaUSD)
		assert.False(t, svc.UndoStatus().Available)

		_, _, err = svc.Undo(ctx)
		assertCode(t, err, ErrNothingToUndo, apiErrors.ErrNothingToUndo)
	})

	t.Run("Sem captura não há o que desfazer", func(t *testing.T) {
		svc, _ := newTestService(t, nil)

		_, _, err := svc.Undo(ctx)
		assertCode(t, err, ErrNothingToUndo, apiErrors.ErrNothingToUndo)
	})

	t.Run("Prazo expirado descarta a captura", func(t *testing.T) {
		svc, clock := newTestService(t, nil)

		_, err := svc.Commit(ctx, "Marzo", 0, domain.Candidate{"cobranzaUSD": "100"})
		require.NoError(t, err)
		_, err = svc.Commit(ctx, "Marzo", 0, domain.Candidate{"cobranzaUSD": "200"})
		require.NoError(t, err)

		clock.Advance(DefaultUndoTTL)

		_, _, err = svc.Undo(ctx)
		assertCode(t, err, ErrUndoExpired, apiErrors.ErrUndoExpired)

		_, _, err = svc.Undo(ctx)
		assertCode(t, err, ErrNothingToUndo, apiErrors.ErrNothingToUndo)

		consolidated, _ := svc.Consolidated("Marzo")
		assert.Equal(t, 200.0, consolidated.CobranzaUSD)
	})

	t.Run("Nova captura substitui a anterior", func(t *testing.T) {
		svc, _ := newTestService(t, nil)

		_, _ = svc.Commit(ctx, "Enero", 0, domain.Candidate{"cobranzaUSD": "1"})
		_, _ = svc.Commit(ctx, "Enero", 0, domain.Candidate{"cobranzaUSD": "2"})
		_, _ = svc.Commit(ctx, "Abril", 3, domain.Candidate{"cobranzaUSD": "3"})
		_, _ = svc.Commit(ctx, "Abril", 3, domain.Candidate{"cobranzaUSD": "4"})

		status := svc.UndoStatus()
		assert.Equal(t, "Abril", status.Month)
		require.NotNil(t, status.Week)
		assert.Equal(t, 3, *status.Week)

		_, _, err := svc.Undo(ctx)
		require.NoError(t, err)

		enero, _ := svc.Consolidated("Enero")
		assert.Equal(t, 2.0, enero.CobranzaUSD)
	})
}

func TestUndoStatus_TempoRestante(t *testing.T) {
	ctx := context.Background()
	svc, clock := newTestService(t, nil)

	assert.Equal(t, domain.UndoStatus{}, svc.UndoStatus())

	_, _ = svc.Commit(ctx, "Mayo", 1, domain.Candidate{"cobranzaUSD": "1"})
	_, _ = svc.Commit(ctx, "Mayo", 1, domain.Candidate{"cobranzaUSD": "2"})

	clock.Advance(10*time.Second + 500*time.Millisecond)

	status := svc.UndoStatus()
	assert.True(t, status.Available)
	assert.Equal(t, 20, status.RemainingSeconds)
	require.NotNil(t, status.ExpiresAt)
	assert.Equal(t, clock.now.Add(19*time.Second+500*time.Millisecond), *status.ExpiresAt)

	clock.Advance(20 * time.Second)
	assert.False(t, svc.UndoStatus().Available)
}

func TestDuplicateWeek(t *testing.T) {
	ctx := context.Background()
	source := domain.WeekSlot{Month: "Enero", Week: 0}
	target := domain.WeekSlot{Month: "Junio", Week: 2}

	t.Run("Mesma semana é rejeitada", func(t *testing.T) {
		svc, _ := newTestService(t, nil)

		_, err := svc.DuplicateWeek(ctx, source, source, true)
		assertCode(t, err, ErrSameWeek, apiErrors.ErrSameWeek)
	})

	t.Run("Destino com dados exige sobrescrita", func(t *testing.T) {
		svc, _ := newTestService(t, nil)
		_, _ = svc.Commit(ctx, "Enero", 0, domain.Candidate{"leadsAds": "7"})
		_, _ = svc.Commit(ctx, "Junio", 2, domain.Candidate{"leadsAds": "1"})

		_, err := svc.DuplicateWeek(ctx, source, target, false)
		assertCode(t, err, ErrWeekHasData, apiErrors.ErrWeekHasData)

		record, err := svc.DuplicateWeek(ctx, source, target, true)
		require.NoError(t, err)
		v, _ := record.Get(domain.FieldLeadsAds)
		assert.Equal(t, 7.0, v)
	})

	t.Run("Cópia é independente da origem", func(t *testing.T) {
		svc, _ := newTestService(t, nil)
		_, _ = svc.Commit(ctx, "Enero", 0, domain.Candidate{"leadsAds": "7", "deudaSocio2": "300"})

		_, err := svc.DuplicateWeek(ctx, source, target, false)
		require.NoError(t, err)

		_, _ = svc.Commit(ctx, "Enero", 0, domain.Candidate{"leadsAds": "99", "deudaSocio2": "1"})

		junio, err := svc.Month("Junio")
		require.NoError(t, err)
		v, _ := junio.Weeks[2].Get(domain.FieldLeadsAds)
		assert.Equal(t, 7.0, v)
		require.NotNil(t, junio.Weeks[2].PartnerDebts[1])
		assert.Equal(t, 300.0, *junio.Weeks[2].PartnerDebts[1])

		consolidated, _ := svc.Consolidated("Junio")
		assert.Equal(t, 7.0, consolidated.LeadsAds)
	})

	t.Run("Duplicação não gera desfazer", func(t *testing.T) {
		svc, _ := newTestService(t, nil)
		_, _ = svc.Commit(ctx, "Enero", 0, domain.Candidate{"leadsAds": "7"})
		_, _ = svc.Commit(ctx, "Junio", 2, domain.Candidate{"leadsAds": "1"})

		_, err := svc.DuplicateWeek(ctx, source, target, true)
		require.NoError(t, err)
		assert.False(t, svc.UndoStatus().Available)
	})

	t.Run("Endereço inválido", func(t *testing.T) {
		svc, _ := newTestService(t, nil)

		_, err := svc.DuplicateWeek(ctx, source, domain.WeekSlot{Month: "Junio", Week: 9}, false)
		assertCode(t, err, ErrInvalidWeekIndex, apiErrors.ErrInvalidWeek)
	})
}

func TestUpdateMeta(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, nil)

	gastos := 2000.0
	bucket, err := svc.UpdateMeta(ctx, "Julio", domain.MonthMeta{GastosFijos: &gastos, DeudasSocios: []float64{100, 200}})
	require.NoError(t, err)
	require.NotNil(t, bucket.Meta.GastosFijos)
	assert.Equal(t, 2000.0, *bucket.Meta.GastosFijos)

	consolidated, err := svc.Consolidated("Julio")
	require.NoError(t, err)
	assert.Equal(t, 2000.0, consolidated.GastosFijos)
	assert.Equal(t, 300.0, consolidated.DeudaSocios)
	assert.Equal(t, domain.DefaultInversionTotal, consolidated.InversionTotal)

	_, err = svc.UpdateMeta(ctx, "Julia", domain.MonthMeta{})
	assertCode(t, err, ErrUnknownMonth, apiErrors.ErrUnknownMonth)
}

func TestMonth_RetornaCopia(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, nil)
	_, _ = svc.Commit(ctx, "Agosto", 0, domain.Candidate{"leadsAds": "4"})

	bucket, err := svc.Month("Agosto")
	require.NoError(t, err)
	bucket.Weeks[0].Set(domain.FieldLeadsAds, 1000)
	bucket.Consolidated.LeadsAds = 1000

	again, _ := svc.Month("Agosto")
	v, _ := again.Weeks[0].Get(domain.FieldLeadsAds)
	assert.Equal(t, 4.0, v)
	assert.Equal(t, 4.0, again.Consolidated.LeadsAds)

	_, err = svc.Month("Agost")
	assertCode(t, err, ErrUnknownMonth, apiErrors.ErrUnknownMonth)
}

func TestExportImport(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryStore()
	svc, _ := newTestService(t, kv)

	gastos := 5000.0
	_, _ = svc.Commit(ctx, "Enero", 0, domain.Candidate{"leadsRecibidos": "40", "leadsCalificados": "12", "deudaSocio1": "50"})
	_, _ = svc.Commit(ctx, "Octubre", 3, domain.Candidate{"cobranzaUSD": "1200.5"})
	_, _ = svc.UpdateMeta(ctx, "Octubre", domain.MonthMeta{GastosFijos: &gastos})

	payload, err := svc.Export(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.BackupVersion, payload.Version)
	assert.Len(t, payload.DashboardData, 12)
	assert.True(t, utils.IsBackupID(payload.BackupID), payload.BackupID)
	assert.Equal(t, "2026-03-10T12:00:00.000Z", payload.ExportDate)

	logo := "data:image/png;base64,AAAA"
	payload.Logo = &logo

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	restored, _ := newTestService(t, storage.NewMemoryStore())
	require.NoError(t, restored.Import(ctx, data))

	enero, err := restored.Consolidated("Enero")
	require.NoError(t, err)
	assert.Equal(t, 40.0, enero.LeadsRecibidos)
	assert.Equal(t, 12.0, enero.LeadsCalificados)

	bucket, _ := restored.Month("Enero")
	require.NotNil(t, bucket.Weeks[0].PartnerDebts[0])
	assert.Equal(t, 50.0, *bucket.Weeks[0].PartnerDebts[0])

	octubre, _ := restored.Consolidated("Octubre")
	assert.Equal(t, 1200.5, octubre.CobranzaUSD)
	assert.Equal(t, 5000.0, octubre.GastosFijos)

	again, err := restored.Export(ctx)
	require.NoError(t, err)
	require.NotNil(t, again.Logo)
	assert.Equal(t, logo, *again.Logo)
	assert.Equal(t, 46, restored.PendingWeeks())
}

func TestImport_Rejeicoes(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "JSON inválido", data: `{"dashboardData":`},
		{name: "Sem dashboardData", data: `{"version":"1.0"}`},
		{name: "Sem versão", data: `{"dashboardData":{}}`},
		{name: "Mês desconhecido", data: `{"dashboardData":{"Smarch":{"weeks":[]}},"version":"1.0"}`},
		{name: "Mais de 4 semanas", data: `{"dashboardData":{"Enero":{"weeks":[{},{},{},{},{}]}},"version":"1.0"}`},
		{name: "Meta com tipo inválido", data: `{"dashboardData":{"Enero":{"weeks":[],"meta":{"gastosFijos":{"a":1}}}},"version":"1.0"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			svc, _ := newTestService(t, nil)
			_, _ = svc.Commit(ctx, "Enero", 0, domain.Candidate{"leadsAds": "3"})
			_, _ = svc.Commit(ctx, "Enero", 0, domain.Candidate{"leadsAds": "4"})

			err := svc.Import(ctx, []byte(tt.data))
			assertCode(t, err, ErrInvalidBackup, apiErrors.ErrInvalidBackup)

			consolidated, _ := svc.Consolidated("Enero")
			assert.Equal(t, 4.0, consolidated.LeadsAds)
			assert.True(t, svc.UndoStatus().Available, "estado não muda em importação rejeitada")
		})
	}
}

func TestImport_FormatoLegado(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryStore()
	svc, _ := newTestService(t, kv)

	data := `{
		"dashboardData": {
			"Febrero": {
				"weeks": [{"leadsAds": "15", "_provided": {"leadsAds": true}}, null],
				"meta": {"gastosFijos": "1800", "deudasSocios": [1, 2, 3, 4, 5]}
			}
		},
		"exportDate": "2026-02-01T08:30:00.000Z",
		"version": "1.0"
	}`

	require.NoError(t, svc.Import(ctx, []byte(data)))

	febrero, _ := svc.Consolidated("Febrero")
	assert.Equal(t, 15.0, febrero.LeadsAds)
	assert.Equal(t, 1800.0, febrero.GastosFijos)
	assert.Equal(t, 10.0, febrero.DeudaSocios)
	assert.False(t, svc.UndoStatus().Available)

	last, err := svc.LastBackupAt(ctx)
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.True(t, time.Date(2026, 2, 1, 8, 30, 0, 0, time.UTC).Equal(*last))
}

func TestAutoBackup(t *testing.T) {
	ctx := context.Background()

	t.Run("Grava após alteração respeitando o intervalo", func(t *testing.T) {
		kv := storage.NewMemoryStore()
		svc, clock := newTestService(t, kv)

		_, _ = svc.Commit(ctx, "Enero", 0, domain.Candidate{"leadsAds": "1"})
		data, err := kv.Get(ctx, storage.AutoBackupKey)
		require.NoError(t, err)

		var payload domain.BackupPayload
		require.NoError(t, json.Unmarshal(data, &payload))
		assert.True(t, payload.AutoBackup)

		require.NoError(t, kv.Delete(ctx, storage.AutoBackupKey))

		clock.Advance(30 * time.Minute)
		_, _ = svc.Commit(ctx, "Enero", 1, domain.Candidate{"leadsAds": "1"})
		_, err = kv.Get(ctx, storage.AutoBackupKey)
		assert.ErrorIs(t, err, storage.ErrNotFound)

		clock.Advance(30 * time.Minute)
		_, _ = svc.Commit(ctx, "Enero", 2, domain.Candidate{"leadsAds": "1"})
		_, err = kv.Get(ctx, storage.AutoBackupKey)
		assert.NoError(t, err)
	})

	t.Run("Forçado ignora o intervalo", func(t *testing.T) {
		kv := storage.NewMemoryStore()
		svc, _ := newTestService(t, kv)

		written, err := svc.AutoBackup(ctx, false)
		require.NoError(t, err)
		assert.True(t, written)

		written, err = svc.AutoBackup(ctx, false)
		require.NoError(t, err)
		assert.False(t, written)

		written, err = svc.AutoBackup(ctx, true)
		require.NoError(t, err)
		assert.True(t, written)
	})

	t.Run("Execução agendada tolera atraso do último backup", func(t *testing.T) {
		kv := storage.NewMemoryStore()
		svc, clock := newTestService(t, kv)

		clock.Advance(5 * time.Second)
		written, err := svc.AutoBackup(ctx, false)
		require.NoError(t, err)
		require.True(t, written)

		clock.Advance(30 * time.Minute)
		written, err = svc.AutoBackup(ctx, false)
		require.NoError(t, err)
		assert.False(t, written, "metade do intervalo não grava")

		clock.Advance(30*time.Minute - 5*time.Second)
		written, err = svc.AutoBackup(ctx, false)
		require.NoError(t, err)
		assert.True(t, written, "a execução da hora cheia seguinte grava")
	})

	t.Run("Sem armazenamento não faz nada", func(t *testing.T) {
		svc, _ := newTestService(t, nil)

		written, err := svc.AutoBackup(ctx, true)
		require.NoError(t, err)
		assert.False(t, written)
	})
}

func TestAutoBackup_FalhaDeArmazenamento(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	kv := mocks.NewMockKeyValueStore(ctrl)
	svc, _ := newTestService(t, kv)

	kv.EXPECT().Get(gomock.Any(), storage.LastBackupDateKey).Return(nil, storage.ErrNotFound)
	kv.EXPECT().Set(gomock.Any(), storage.AutoBackupKey, gomock.Any()).Return(errors.New("disco cheio"))

	_, err := svc.AutoBackup(ctx, false)
	assertCode(t, err, ErrStorageOperation, apiErrors.ErrStorageOperation)
}

func TestCommit_FalhaNoBackupNaoImpedeGravacao(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	kv := mocks.NewMockKeyValueStore(ctrl)
	svc, _ := newTestService(t, kv)

	kv.EXPECT().Get(gomock.Any(), storage.LastBackupDateKey).Return(nil, errors.New("sem acesso"))

	record, err := svc.Commit(ctx, "Enero", 0, domain.Candidate{"leadsAds": "8"})
	require.NoError(t, err)
	v, _ := record.Get(domain.FieldLeadsAds)
	assert.Equal(t, 8.0, v)
}

func TestRestoreAutoBackup(t *testing.T) {
	ctx := context.Background()

	t.Run("Restaura o backup automático", func(t *testing.T) {
		kv := storage.NewMemoryStore()
		svc, _ := newTestService(t, kv)
		_, _ = svc.Commit(ctx, "Noviembre", 1, domain.Candidate{"cobranzaUSD": "75"})

		restored, _ := newTestService(t, kv)
		ok, err := restored.RestoreAutoBackup(ctx)
		require.NoError(t, err)
		assert.True(t, ok)

		consolidated, _ := restored.Consolidated("Noviembre")
		assert.Equal(t, 75.0, consolidated.CobranzaUSD)
	})

	t.Run("Sem backup gravado", func(t *testing.T) {
		svc, _ := newTestService(t, storage.NewMemoryStore())

		ok, err := svc.RestoreAutoBackup(ctx)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Falha de leitura", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		kv := mocks.NewMockKeyValueStore(ctrl)
		svc, _ := newTestService(t, kv)

		kv.EXPECT().Get(gomock.Any(), storage.AutoBackupKey).Return(nil, errors.New("sem acesso"))

		ok, err := svc.RestoreAutoBackup(ctx)
		assert.False(t, ok)
		assertCode(t, err, ErrStorageOperation, apiErrors.ErrStorageOperation)
	})
}

func TestProgress(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, nil)

	_, _ = svc.Commit(ctx, "Enero", 0, domain.Candidate{"leadsAds": "1"})
	_, _ = svc.Commit(ctx, "Enero", 3, domain.Candidate{"leadsAds": "1"})
	_, _ = svc.Commit(ctx, "Marzo", 1, domain.Candidate{"leadsAds": "1"})

	progress := svc.Progress()
	assert.Equal(t, 3, progress.Loaded)
	assert.Equal(t, 48, progress.Total)
	assert.Equal(t, 45, progress.Pending)
	assert.Equal(t, 6, progress.Percentage)
	assert.Equal(t, domain.MonthProgress{Loaded: 2, Total: 4, Percentage: 50}, progress.MonthlyBreakdown["Enero"])
	assert.Equal(t, domain.MonthProgress{Loaded: 1, Total: 4, Percentage: 25}, progress.MonthlyBreakdown["Marzo"])
	assert.Len(t, progress.MonthlyBreakdown, 12)
	assert.Equal(t, 45, svc.PendingWeeks())
}

func TestWeekSummaries(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, nil)

	_, _ = svc.Commit(ctx, "Enero", 0, domain.Candidate{"leadsAds": "5", "leadsOrganico": "3"})
	_, _ = svc.Commit(ctx, "Febrero", 1, domain.Candidate{"leadsRecibidos": "20", "cobranzaUSD": "10"})

	week := 1
	tests := []struct {
		name     string
		filter   domain.WeekFilter
		expected int
	}{
		{name: "Sem filtro", filter: domain.WeekFilter{}, expected: 48},
		{name: "Por mês", filter: domain.WeekFilter{Month: "Enero"}, expected: 4},
		{name: "Por semana", filter: domain.WeekFilter{Week: &week}, expected: 12},
		{name: "Por completude", filter: domain.WeekFilter{Completeness: "1-100"}, expected: 2},
		{name: "Completude zero", filter: domain.WeekFilter{Completeness: "0-0"}, expected: 46},
		{name: "Busca sem diferenciar maiúsculas", filter: domain.WeekFilter{Search: "FEBRERO SEMANA 2"}, expected: 1},
		{name: "Busca parcial", filter: domain.WeekFilter{Search: "semana 4"}, expected: 12},
		{name: "Filtros combinados", filter: domain.WeekFilter{Month: "Febrero", Completeness: "1-100"}, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := svc.WeekSummaries(tt.filter)
			require.NoError(t, err)
			assert.Len(t, rows, tt.expected)
		})
	}

	t.Run("Resumo da semana", func(t *testing.T) {
		rows, err := svc.WeekSummaries(domain.WeekFilter{Month: "Enero", Week: new(int)})
		require.NoError(t, err)
		require.Len(t, rows, 1)

		row := rows[0]
		assert.True(t, row.HasData)
		assert.Equal(t, 1, row.WeekNumber)
		assert.Equal(t, 2, row.FilledFields)
		assert.Equal(t, 37, row.TotalFields)
		assert.Equal(t, 5, row.Completeness)
		require.NotNil(t, row.LeadsRecibidos)
		assert.Equal(t, 8.0, *row.LeadsRecibidos)
		assert.Nil(t, row.CobranzaUSD)
	})

	t.Run("Semana pendente não tem valores", func(t *testing.T) {
		rows, _ := svc.WeekSummaries(domain.WeekFilter{Month: "Abril", Week: new(int)})
		require.Len(t, rows, 1)
		assert.False(t, rows[0].HasData)
		assert.Nil(t, rows[0].LeadsRecibidos)
	})

	t.Run("Filtro de completude inválido", func(t *testing.T) {
		_, err := svc.WeekSummaries(domain.WeekFilter{Completeness: "abc"})
		assertCode(t, err, ErrInvalidFilter, apiErrors.ErrInvalidFormat)
	})

	t.Run("Mês inexistente", func(t *testing.T) {
		_, err := svc.WeekSummaries(domain.WeekFilter{Month: "Smarch"})
		assertCode(t, err, ErrUnknownMonth, apiErrors.ErrUnknownMonth)
	})
}
