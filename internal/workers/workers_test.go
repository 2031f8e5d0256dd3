package workers_test

import (
	"context"
	"encoding/json"
	"errors"
	"image"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/alsaqri/phoneshop/internal/core/domain"
	"github.com/alsaqri/phoneshop/internal/pkg/label"
	"github.com/alsaqri/phoneshop/internal/workers"
	"github.com/alsaqri/phoneshop/test/helpers"
	"github.com/alsaqri/phoneshop/test/mocks"
)

func onePagePDF(t *testing.T) []byte {
	t.Helper()

	png, err := label.EncodePNG(image.NewRGBA(image.Rect(0, 0, 40, 25)))
	require.NoError(t, err)
	data, err := label.Document(png, label.Spec{WidthMM: 40, HeightMM: 25, DPI: 300})
	require.NoError(t, err)
	return data
}

func labelTask(t *testing.T, subject domain.LabelSubject, identifier string) *asynq.Task {
	t.Helper()

	task, err := workers.NewLabelRenderTask(subject, identifier)
	require.NoError(t, err)
	return task
}

type labelMocks struct {
	labels      *mocks.MockLabelService
	phones      *mocks.MockPhoneRepository
	accessories *mocks.MockAccessoryRepository
}

func TestLabelProcessor_ProcessLabel(t *testing.T) {
	pdfData := onePagePDF(t)

	artifact := func(subject domain.LabelSubject, id string, format domain.LabelFormat, data []byte) *domain.LabelArtifact {
		return &domain.LabelArtifact{Subject: subject, Identifier: id, Format: format, Data: data}
	}

	tests := []struct {
		name          string
		task          func(t *testing.T) *asynq.Task
		setupMocks    func(m labelMocks)
		expectedError bool
		skipRetry     bool
	}{
		{
			name: "phone_label_stored",
			task: func(t *testing.T) *asynq.Task { return labelTask(t, domain.LabelSubjectPhone, "000001") },
			setupMocks: func(m labelMocks) {
				gomock.InOrder(
					m.labels.EXPECT().PhoneLabel(gomock.Any(), "000001", domain.LabelOptions{Format: domain.LabelFormatPNG}).
						Return(artifact(domain.LabelSubjectPhone, "000001", domain.LabelFormatPNG, []byte("png")), nil),
					m.labels.EXPECT().Store(gomock.Any(), gomock.Any()).Return("labels/phone/000001.png", nil),
					m.labels.EXPECT().PhoneLabel(gomock.Any(), "000001", domain.LabelOptions{Format: domain.LabelFormatPDF}).
						Return(artifact(domain.LabelSubjectPhone, "000001", domain.LabelFormatPDF, pdfData), nil),
					m.labels.EXPECT().Store(gomock.Any(), gomock.Any()).Return("labels/phone/000001.pdf", nil),
					m.phones.EXPECT().SetLabelKey(gomock.Any(), "000001", "labels/phone/000001.pdf").Return(nil),
				)
			},
		},
		{
			name: "accessory_label_stored",
			task: func(t *testing.T) *asynq.Task {
				return labelTask(t, domain.LabelSubjectAccessory, "ACC1700000000123")
			},
			setupMocks: func(m labelMocks) {
				m.labels.EXPECT().AccessoryLabel(gomock.Any(), "ACC1700000000123", domain.LabelOptions{Format: domain.LabelFormatPNG}).
					Return(artifact(domain.LabelSubjectAccessory, "ACC1700000000123", domain.LabelFormatPNG, []byte("png")), nil)
				m.labels.EXPECT().AccessoryLabel(gomock.Any(), "ACC1700000000123", domain.LabelOptions{Format: domain.LabelFormatPDF}).
					Return(artifact(domain.LabelSubjectAccessory, "ACC1700000000123", domain.LabelFormatPDF, pdfData), nil)
				m.labels.EXPECT().Store(gomock.Any(), gomock.Any()).Return("labels/accessory/ACC1700000000123.png", nil)
				m.labels.EXPECT().Store(gomock.Any(), gomock.Any()).Return("labels/accessory/ACC1700000000123.pdf", nil)
				m.accessories.EXPECT().SetLabelKey(gomock.Any(), "ACC1700000000123", "labels/accessory/ACC1700000000123.pdf").Return(nil)
			},
		},
		{
			name: "deleted_item_is_not_retried",
			task: func(t *testing.T) *asynq.Task { return labelTask(t, domain.LabelSubjectPhone, "000404") },
			setupMocks: func(m labelMocks) {
				m.labels.EXPECT().PhoneLabel(gomock.Any(), "000404", domain.LabelOptions{Format: domain.LabelFormatPNG}).Return(nil, domain.ErrNotFound)
			},
			expectedError: true,
			skipRetry:     true,
		},
		{
			name: "storage_failure_is_retried",
			task: func(t *testing.T) *asynq.Task { return labelTask(t, domain.LabelSubjectPhone, "000002") },
			setupMocks: func(m labelMocks) {
				m.labels.EXPECT().PhoneLabel(gomock.Any(), "000002", domain.LabelOptions{Format: domain.LabelFormatPNG}).
					Return(artifact(domain.LabelSubjectPhone, "000002", domain.LabelFormatPNG, []byte("png")), nil)
				m.labels.EXPECT().Store(gomock.Any(), gomock.Any()).Return("", errors.New("failed to store label: timeout"))
			},
			expectedError: true,
		},
		{
			name: "broken_pdf_is_not_retried",
			task: func(t *testing.T) *asynq.Task { return labelTask(t, domain.LabelSubjectPhone, "000003") },
			setupMocks: func(m labelMocks) {
				m.labels.EXPECT().PhoneLabel(gomock.Any(), "000003", domain.LabelOptions{Format: domain.LabelFormatPNG}).
					Return(artifact(domain.LabelSubjectPhone, "000003", domain.LabelFormatPNG, []byte("png")), nil)
				m.labels.EXPECT().Store(gomock.Any(), gomock.Any()).Return("labels/phone/000003.png", nil)
				m.labels.EXPECT().PhoneLabel(gomock.Any(), "000003", domain.LabelOptions{Format: domain.LabelFormatPDF}).
					Return(artifact(domain.LabelSubjectPhone, "000003", domain.LabelFormatPDF, []byte("not a pdf")), nil)
			},
			expectedError: true,
			skipRetry:     true,
		},
		{
			name:          "malformed_payload",
			task:          func(t *testing.T) *asynq.Task { return asynq.NewTask(workers.TypeLabelRender, []byte("{")) },
			setupMocks:    func(m labelMocks) {},
			expectedError: true,
			skipRetry:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := labelMocks{
				labels:      mocks.NewMockLabelService(ctrl),
				phones:      mocks.NewMockPhoneRepository(ctrl),
				accessories: mocks.NewMockAccessoryRepository(ctrl),
			}
			tt.setupMocks(m)

			processor := workers.NewLabelProcessor(m.labels, m.phones, m.accessories, helpers.TestLogger())
			err := processor.ProcessLabel(context.Background(), tt.task(t))

			if !tt.expectedError {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.skipRetry, errors.Is(err, asynq.SkipRetry))
		})
	}
}

func TestCleanupProcessor_CleanupStorage(t *testing.T) {
	t.Run("default_prefixes_and_retention", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		storage := mocks.NewMockBlobStorage(ctrl)

		storage.EXPECT().ListOlderThan(gomock.Any(), "labels/", 48*time.Hour).
			Return([]string{"labels/phone/000001.png", "labels/phone/000001.pdf"}, nil)
		storage.EXPECT().ListOlderThan(gomock.Any(), "exports/", 48*time.Hour).
			Return([]string{"exports/inventory-20260101-000000.xlsx"}, nil)
		storage.EXPECT().Delete(gomock.Any(), "labels/phone/000001.png").Return(nil)
		storage.EXPECT().Delete(gomock.Any(), "labels/phone/000001.pdf").Return(errors.New("access denied"))
		storage.EXPECT().Delete(gomock.Any(), "exports/inventory-20260101-000000.xlsx").Return(nil)

		processor := workers.NewCleanupProcessor(storage, 48*time.Hour, helpers.TestLogger())
		require.NoError(t, processor.CleanupStorage(context.Background(), asynq.NewTask(workers.TypeLabelCleanup, nil)))
	})

	t.Run("payload_overrides", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		storage := mocks.NewMockBlobStorage(ctrl)

		storage.EXPECT().ListOlderThan(gomock.Any(), "exports/", time.Hour).Return(nil, nil)

		task, err := workers.NewCleanupTask(time.Hour, "exports/")
		require.NoError(t, err)

		processor := workers.NewCleanupProcessor(storage, 0, helpers.TestLogger())
		require.NoError(t, processor.CleanupStorage(context.Background(), task))
	})

	t.Run("listing_fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		storage := mocks.NewMockBlobStorage(ctrl)

		storage.EXPECT().ListOlderThan(gomock.Any(), "labels/", gomock.Any()).Return(nil, errors.New("no such bucket"))

		processor := workers.NewCleanupProcessor(storage, time.Hour, helpers.TestLogger())
		err := processor.CleanupStorage(context.Background(), asynq.NewTask(workers.TypeLabelCleanup, nil))
		assert.ErrorContains(t, err, "failed to list labels/")
	})
}

func TestReportProcessor_ExportInventory(t *testing.T) {
	ctrl := gomock.NewController(t)
	reports := mocks.NewMockReportService(ctrl)
	processor := workers.NewReportProcessor(reports, helpers.TestLogger())

	reports.EXPECT().ExportInventory(gomock.Any()).Return("exports/inventory-20260301-103000.xlsx", nil)
	require.NoError(t, processor.ExportInventory(context.Background(), asynq.NewTask(workers.TypeInventoryExport, nil)))

	reports.EXPECT().ExportInventory(gomock.Any()).Return("", errors.New("failed to upload export: timeout"))
	err := processor.ExportInventory(context.Background(), asynq.NewTask(workers.TypeInventoryExport, nil))
	assert.ErrorContains(t, err, "failed to export inventory")
}

type fakeEnqueuer struct {
	tasks []*asynq.Task
	err   error
}

func (f *fakeEnqueuer) EnqueueContext(_ context.Context, task *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.tasks = append(f.tasks, task)
	return &asynq.TaskInfo{ID: "task-1", Type: task.Type()}, nil
}

func TestClient_EnqueueLabelRender(t *testing.T) {
	t.Run("queued", func(t *testing.T) {
		enq := &fakeEnqueuer{}
		client := workers.NewClient(enq, 3, helpers.TestLogger())

		require.NoError(t, client.EnqueueLabelRender(context.Background(), domain.LabelSubjectPhone, "000007"))
		require.Len(t, enq.tasks, 1)
		assert.Equal(t, workers.TypeLabelRender, enq.tasks[0].Type())

		var payload workers.LabelRenderPayload
		require.NoError(t, json.Unmarshal(enq.tasks[0].Payload(), &payload))
		assert.Equal(t, domain.LabelSubjectPhone, payload.Subject)
		assert.Equal(t, "000007", payload.Identifier)
	})

	t.Run("already_queued", func(t *testing.T) {
		client := workers.NewClient(&fakeEnqueuer{err: asynq.ErrTaskIDConflict}, 3, helpers.TestLogger())
		assert.NoError(t, client.EnqueueLabelRender(context.Background(), domain.LabelSubjectPhone, "000007"))
	})

	t.Run("redis_down", func(t *testing.T) {
		client := workers.NewClient(&fakeEnqueuer{err: errors.New("dial tcp: connection refused")}, 3, helpers.TestLogger())
		assert.Error(t, client.EnqueueLabelRender(context.Background(), domain.LabelSubjectAccessory, "ACC1"))
	})
}

func TestClient_EnqueueInventoryExport(t *testing.T) {
	enq := &fakeEnqueuer{}
	client := workers.NewClient(enq, 3, helpers.TestLogger())

	id, err := client.EnqueueInventoryExport(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "task-1", id)
	assert.Equal(t, workers.TypeInventoryExport, enq.tasks[0].Type())
}

func TestLoggingMiddleware(t *testing.T) {
	called := false
	h := workers.LoggingMiddleware(helpers.TestLogger())(asynq.HandlerFunc(func(ctx context.Context, _ *asynq.Task) error {
		called = true
		return errors.New("boom")
	}))

	err := h.ProcessTask(context.Background(), asynq.NewTask(workers.TypeLabelCleanup, nil))
	assert.EqualError(t, err, "boom")
	assert.True(t, called)
}

func TestRetryDelay(t *testing.T) {
	label := asynq.NewTask(workers.TypeLabelRender, nil)
	export := asynq.NewTask(workers.TypeInventoryExport, nil)

	tests := []struct {
		name string
		n    int
		task *asynq.Task
		want time.Duration
	}{
		{name: "first label retry", n: 0, task: label, want: time.Second},
		{name: "label doubles", n: 3, task: label, want: 8 * time.Second},
		{name: "label capped", n: 9, task: label, want: time.Minute},
		{name: "export grows past a minute", n: 7, task: export, want: 128 * time.Second},
		{name: "export capped", n: 12, task: export, want: 10 * time.Minute},
		{name: "huge n does not overflow", n: 64, task: export, want: 10 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, workers.RetryDelay(tt.n, errors.New("x"), tt.task))
		})
	}
}
