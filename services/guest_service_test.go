package services

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"undangan.link/models"
	"undangan.link/pkg/filestorage"
	"undangan.link/pkg/spreadsheet"
	"undangan.link/testhelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var fixedNow = time.Date(2025, 6, 14, 10, 30, 0, 0, time.UTC)

func TestAddGuestValidatesName(t *testing.T) {
	f := newFixture(t)
	budi, _ := f.newTenant(t, "budi", "budi-ani")
	ctx := context.Background()

	_, err := f.guests.AddGuest(ctx, budi, "   ")
	assert.ErrorIs(t, err, ErrValidation)
	_, err = f.guests.AddGuest(ctx, budi, strings.Repeat("a", 101))
	assert.ErrorIs(t, err, ErrValidation)
	_, err = f.guests.AddGuest(ctx, f.super, "Pak RT")
	assert.ErrorIs(t, err, ErrForbidden)

	guest, err := f.guests.AddGuest(ctx, budi, "  Pak RT ")
	require.NoError(t, err)
	assert.Equal(t, "Pak RT", guest.Name)
	assert.Len(t, guest.Code, 8)
	assert.False(t, guest.HasResponded())
}

func TestAddGuestRetriesOnCodeCollision(t *testing.T) {
	codes := []string{"dupe0001", "dupe0001", "fresh001"}
	var i int32
	gen := func() string {
		n := atomic.AddInt32(&i, 1) - 1
		if int(n) >= len(codes) {
			return codes[len(codes)-1]
		}
		return codes[n]
	}
	f := newFixture(t, WithCodeGenerator(gen))
	budi, _ := f.newTenant(t, "budi", "budi-ani")
	ctx := context.Background()

	first, err := f.guests.AddGuest(ctx, budi, "Pertama")
	require.NoError(t, err)
	assert.Equal(t, "dupe0001", first.Code)

	second, err := f.guests.AddGuest(ctx, budi, "Kedua")
	require.NoError(t, err)
	assert.Equal(t, "fresh001", second.Code)
}

func TestAddGuestGivesUpAfterRepeatedCollisions(t *testing.T) {
	f := newFixture(t, WithCodeGenerator(func() string { return "samecode" }))
	budi, _ := f.newTenant(t, "budi", "budi-ani")
	ctx := context.Background()

	_, err := f.guests.AddGuest(ctx, budi, "Pertama")
	require.NoError(t, err)
	_, err = f.guests.AddGuest(ctx, budi, "Kedua")
	assert.ErrorIs(t, err, ErrStorageFailure)
	assert.Equal(t, int64(1), count(t, f.db, &models.Guest{}, ""))
}

func TestGuestOperationsAreTenantScoped(t *testing.T) {
	f := newFixture(t)
	budi, _ := f.newTenant(t, "budi", "budi-ani")
	joko, _ := f.newTenant(t, "joko", "joko-sri")
	ctx := context.Background()

	guest, err := f.guests.AddGuest(ctx, budi, "Pak RT")
	require.NoError(t, err)

	assert.ErrorIs(t, f.guests.RenameGuest(ctx, joko, guest.ID, "Pak RW"), ErrNotFound)
	assert.ErrorIs(t, f.guests.DeleteGuest(ctx, joko, guest.ID), ErrNotFound)
	assert.ErrorIs(t, f.guests.ResetGreeting(ctx, joko, guest.ID), ErrNotFound)

	list, err := f.guests.ListGuests(ctx, joko)
	require.NoError(t, err)
	assert.Empty(t, list)

	require.NoError(t, f.guests.RenameGuest(ctx, budi, guest.ID, "Pak RW"))
	list, err = f.guests.ListGuests(ctx, budi)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Pak RW", list[0].Name)

	require.NoError(t, f.guests.DeleteGuest(ctx, budi, guest.ID))
	assert.ErrorIs(t, f.guests.DeleteGuest(ctx, budi, guest.ID), ErrNotFound)
}

func TestSubmitRSVPAcceptsOnce(t *testing.T) {
	f := newFixture(t, WithClock(func() time.Time { return fixedNow }))
	budi, tenant := f.newTenant(t, "budi", "budi-ani")
	ctx := context.Background()
	guest, err := f.guests.AddGuest(ctx, budi, "Pak RT")
	require.NoError(t, err)

	got, err := f.guests.SubmitRSVP(ctx, tenant.ID, guest.Code, models.RSVPStatusAttending, "  Selamat ya!  ")
	require.NoError(t, err)
	require.NotNil(t, got.RSVPStatus)
	assert.Equal(t, models.RSVPStatusAttending, *got.RSVPStatus)
	require.NotNil(t, got.Message)
	assert.Equal(t, "Selamat ya!", *got.Message)

	_, err = f.guests.SubmitRSVP(ctx, tenant.ID, guest.Code, models.RSVPStatusNotAttending, "berubah pikiran")
	assert.ErrorIs(t, err, ErrAlreadyResponded)

	var stored models.Guest
	require.NoError(t, f.db.First(&stored, guest.ID).Error)
	require.NotNil(t, stored.RSVPStatus)
	assert.Equal(t, models.RSVPStatusAttending, *stored.RSVPStatus)
	assert.Equal(t, "Selamat ya!", *stored.Message)
	require.NotNil(t, stored.RespondedAt)
	assert.True(t, fixedNow.Equal(stored.RespondedAt.UTC()))
}

func TestSubmitRSVPEmptyMessageStoredAsNull(t *testing.T) {
	f := newFixture(t)
	budi, tenant := f.newTenant(t, "budi", "budi-ani")
	ctx := context.Background()
	guest, err := f.guests.AddGuest(ctx, budi, "Pak RT")
	require.NoError(t, err)

	_, err = f.guests.SubmitRSVP(ctx, tenant.ID, guest.Code, models.RSVPStatusUndecided, "   ")
	require.NoError(t, err)

	var stored models.Guest
	require.NoError(t, f.db.First(&stored, guest.ID).Error)
	assert.Nil(t, stored.Message)
	assert.True(t, stored.HasResponded())
}

func TestSubmitRSVPRejectsInvalidInput(t *testing.T) {
	f := newFixture(t)
	budi, tenant := f.newTenant(t, "budi", "budi-ani")
	_, other := f.newTenant(t, "joko", "joko-sri")
	ctx := context.Background()
	guest, err := f.guests.AddGuest(ctx, budi, "Pak RT")
	require.NoError(t, err)

	_, err = f.guests.SubmitRSVP(ctx, tenant.ID, guest.Code, models.RSVPStatus("maybe"), "")
	assert.ErrorIs(t, err, ErrValidation)
	_, err = f.guests.SubmitRSVP(ctx, tenant.ID, guest.Code, models.RSVPStatusAttending, strings.Repeat("x", 1001))
	assert.ErrorIs(t, err, ErrValidation)
	_, err = f.guests.SubmitRSVP(ctx, tenant.ID, "tidakada", models.RSVPStatusAttending, "")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = f.guests.SubmitRSVP(ctx, other.ID, guest.Code, models.RSVPStatusAttending, "")
	assert.ErrorIs(t, err, ErrNotFound)

	var stored models.Guest
	require.NoError(t, f.db.First(&stored, guest.ID).Error)
	assert.False(t, stored.HasResponded())
}

func TestSubmitRSVPConcurrentSubmissionsAcceptExactlyOne(t *testing.T) {
	const workers = 8
	f := newFixtureOn(t, testhelpers.NewConcurrentTestDB(t, workers))
	budi, tenant := f.newTenant(t, "budi", "budi-ani")
	ctx := context.Background()
	guest, err := f.guests.AddGuest(ctx, budi, "Pak RT")
	require.NoError(t, err)

	var accepted, rejected int32
	var winner models.RSVPStatus
	var mu sync.Mutex
	start := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			status := models.RSVPStatuses[i%len(models.RSVPStatuses)]
			_, err := f.guests.SubmitRSVP(ctx, tenant.ID, guest.Code, status, "ucapan")
			switch {
			case err == nil:
				atomic.AddInt32(&accepted, 1)
				mu.Lock()
				winner = status
				mu.Unlock()
			case errors.Is(err, ErrAlreadyResponded):
				atomic.AddInt32(&rejected, 1)
			default:
				t.Errorf("beklenmeyen hata: %v", err)
			}
		}(i)
	}
	close(start)
	wg.Wait()

	assert.Equal(t, int32(1), accepted)
	assert.Equal(t, int32(workers-1), rejected)

	var stored models.Guest
	require.NoError(t, f.db.First(&stored, guest.ID).Error)
	require.NotNil(t, stored.RSVPStatus)
	assert.Equal(t, winner, *stored.RSVPStatus)
}

func TestResetGreetingReopensRSVP(t *testing.T) {
	f := newFixture(t)
	budi, tenant := f.newTenant(t, "budi", "budi-ani")
	ctx := context.Background()
	guest, err := f.guests.AddGuest(ctx, budi, "Pak RT")
	require.NoError(t, err)

	_, err = f.guests.SubmitRSVP(ctx, tenant.ID, guest.Code, models.RSVPStatusAttending, "Selamat")
	require.NoError(t, err)
	require.NoError(t, f.guests.ResetGreeting(ctx, budi, guest.ID))

	var stored models.Guest
	require.NoError(t, f.db.First(&stored, guest.ID).Error)
	assert.Nil(t, stored.RSVPStatus)
	assert.Nil(t, stored.Message)
	assert.Nil(t, stored.RespondedAt)

	_, err = f.guests.SubmitRSVP(ctx, tenant.ID, guest.Code, models.RSVPStatusNotAttending, "")
	assert.NoError(t, err)
}

func xlsxUpload(t *testing.T, name string, header string, values ...string) *filestorage.Upload {
	t.Helper()
	rows := make([][]interface{}, 0, len(values))
	for _, v := range values {
		rows = append(rows, []interface{}{v})
	}
	var buf bytes.Buffer
	require.NoError(t, spreadsheet.Write(&buf, []string{header}, rows))
	return filestorage.NewUpload(name, buf.Bytes())
}

func TestImportGuests(t *testing.T) {
	f := newFixture(t)
	budi, tenant := f.newTenant(t, "budi", "budi-ani")
	ctx := context.Background()

	n, err := f.guests.ImportGuests(ctx, budi, xlsxUpload(t, "tamu.xlsx", "Nama", "Pak RT", "", "  Bu RW  ", "Mas Joko"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	list, err := f.guests.ListGuests(ctx, budi)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Pak RT", list[0].Name)
	assert.Equal(t, "Bu RW", list[1].Name)
	assert.Equal(t, "Mas Joko", list[2].Name)
	for _, g := range list {
		assert.Equal(t, tenant.ID, g.TenantID)
		assert.Len(t, g.Code, 8)
	}
}

func TestImportGuestsRejectsNonXLSX(t *testing.T) {
	f := newFixture(t)
	budi, _ := f.newTenant(t, "budi", "budi-ani")
	ctx := context.Background()

	_, err := f.guests.ImportGuests(ctx, budi, filestorage.NewUpload("tamu.csv", []byte("Nama\nPak RT\n")))
	assert.ErrorIs(t, err, ErrValidation)
	_, err = f.guests.ImportGuests(ctx, budi, filestorage.NewUpload("tamu.xlsx", []byte("bukan xlsx")))
	assert.ErrorIs(t, err, ErrValidation)
	_, err = f.guests.ImportGuests(ctx, budi, nil)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Zero(t, count(t, f.db, &models.Guest{}, ""))
}

func TestImportGuestsRejectsOversizedFile(t *testing.T) {
	f := newFixture(t)
	budi, _ := f.newTenant(t, "budi", "budi-ani")
	ctx := context.Background()

	upload := xlsxUpload(t, "tamu.xlsx", "Nama", "Pak RT")
	upload.Size = 100 << 20
	_, err := f.guests.ImportGuests(ctx, budi, upload)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Zero(t, count(t, f.db, &models.Guest{}, ""))

	small := newFixture(t, WithMaxImportBytes(16))
	joko, _ := small.newTenant(t, "joko", "joko-sri")
	_, err = small.guests.ImportGuests(ctx, joko, xlsxUpload(t, "tamu.xlsx", "Nama", "Pak RT"))
	assert.ErrorIs(t, err, ErrValidation)
	assert.Zero(t, count(t, small.db, &models.Guest{}, ""))
}

func TestImportGuestsIsAllOrNothing(t *testing.T) {
	f := newFixture(t, WithCodeGenerator(func() string { return "samecode" }))
	budi, _ := f.newTenant(t, "budi", "budi-ani")

	_, err := f.guests.ImportGuests(context.Background(), budi, xlsxUpload(t, "tamu.xlsx", "Nama", "Pak RT", "Bu RW"))
	assert.ErrorIs(t, err, ErrStorageFailure)
	assert.Zero(t, count(t, f.db, &models.Guest{}, ""))
}

func TestExportGuests(t *testing.T) {
	f := newFixture(t, WithClock(func() time.Time { return fixedNow }))
	budi, tenant := f.newTenant(t, "budi", "budi-ani")
	joko, _ := f.newTenant(t, "joko", "joko-sri")
	ctx := context.Background()

	rt, err := f.guests.AddGuest(ctx, budi, "Pak RT")
	require.NoError(t, err)
	_, err = f.guests.AddGuest(ctx, budi, "Bu RW")
	require.NoError(t, err)
	_, err = f.guests.AddGuest(ctx, joko, "Tamu Joko")
	require.NoError(t, err)
	_, err = f.guests.SubmitRSVP(ctx, tenant.ID, rt.Code, models.RSVPStatusAttending, "Selamat")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, f.guests.ExportGuests(ctx, budi, &buf))

	book, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer book.Close()
	rows, err := book.GetRows(book.GetSheetName(book.GetActiveSheetIndex()))
	require.NoError(t, err)

	require.Len(t, rows, 3)
	assert.Equal(t, ExportHeader, rows[0])
	assert.Equal(t, []string{"Pak RT", rt.Code, "Hadir", "Selamat", "2025-06-14 10:30:00"}, rows[1])
	assert.Equal(t, "Bu RW", rows[2][0])
	if len(rows[2]) > 2 {
		assert.Empty(t, rows[2][2])
	}
}
