package pipeline

import (
	"context"

	"github.com/google/uuid"

	"github.com/Aleksandr-Veriasov/PET-project-menu-bot/internal/notifier"
	"github.com/Aleksandr-Veriasov/PET-project-menu-bot/internal/platform"
	"github.com/Aleksandr-Veriasov/PET-project-menu-bot/internal/session"
)

// Start launches a run for url in its own goroutine, bounded by the
// configured concurrency limit. It blocks while the limit is saturated.
func (o *Orchestrator) Start(ctx context.Context, url string, chatID int64) {
	select {
	case o.semaphore <- struct{}{}:
	case <-ctx.Done():
		return
	}
	go func() {
		defer func() { <-o.semaphore }()
		o.Run(ctx, url, chatID)
	}()
}

// Run executes the full pipeline for one video link and returns the
// finished run in StageDone or StageFailed. Every failure path removes
// the artifacts produced so far and reports exactly one error to the
// requester.
func (o *Orchestrator) Run(ctx context.Context, url string, chatID int64) *Run {
	run := &Run{
		ID:       uuid.New().String(),
		URL:      url,
		Platform: platform.Detect(url),
		ChatID:   chatID,
		Stage:    StageStarted,
		cleaned:  make(map[string]bool),
	}
	notify := o.deps.Notifier(chatID)

	defer func() {
		if r := recover(); r != nil {
			o.deps.Logger.Error(ctx, "run %s panicked: %v", run.ID, r)
			o.fail(ctx, run, notify, "Произошла ошибка при обработке видео. Пожалуйста, попробуйте ещё раз.")
		}
	}()

	o.deps.Logger.Info(ctx, "run %s started: %s (%s)", run.ID, url, run.Platform)
	notify.Info(ctx, "🔄 Скачиваю видео и описание... Пожалуйста, подождите.")

	run.Stage = StageDownloading
	videoPath, description := o.deps.Resolver.Acquire(ctx, url)
	if videoPath == "" {
		o.fail(ctx, run, notify, "Не удалось скачать видео. Проверьте ссылку и отправьте её ещё раз.")
		return run
	}
	run.Artifacts.Video = videoPath
	run.Description = description
	run.Stage = StageDownloaded
	notify.Progress(ctx, 20, "📼 Видео скачано")

	run.Stage = StageConverting
	converted := o.deps.Converter.Convert(ctx, videoPath)
	if converted == "" {
		o.fail(ctx, run, notify, "Не удалось обработать видео. Пожалуйста, попробуйте ещё раз.")
		return run
	}
	run.Artifacts.Converted = converted
	// The source file is obsolete once conversion is confirmed; nothing
	// downstream may read it, so it goes away here.
	o.removeArtifact(ctx, run, videoPath)
	notify.Progress(ctx, 40, "🎞 Видео конвертировано")

	run.Stage = StageUploading
	upload := o.deps.Uploader.Start(ctx, converted)

	run.Stage = StageAudioExtracting
	notify.Progress(ctx, 60, "🎧 Извлекаем аудио и распознаём речь...")
	audioPath := o.deps.Converter.ExtractAudio(ctx, converted, o.audioDir)
	if audioPath == "" {
		upload.Abort()
		o.fail(ctx, run, notify, "Не удалось обработать видео. Пожалуйста, попробуйте ещё раз.")
		return run
	}
	run.Artifacts.Audio = audioPath

	run.Stage = StageTranscribing
	transcript := o.deps.Transcriber.Transcribe(ctx, audioPath)
	o.removeArtifact(ctx, run, audioPath)
	if transcript == "" {
		o.deps.Logger.Warn(ctx, "run %s: empty transcript, extracting from description only", run.ID)
	}

	run.Stage = StageExtracting
	notify.Progress(ctx, 80, "🧠 Подготавливаем рецепт через AI... Рецепт практически готов!")
	title, instructions, ingredients := o.deps.Extractor.Extract(ctx, description, transcript)

	ref := upload.Wait(o.uploadWait)
	if ref == "" {
		// A late upload may still have finished between the deadline
		// and now; take the reference if it did.
		ref = upload.Ref()
	}
	run.DistributionRef = ref
	o.removeArtifact(ctx, run, converted)
	if ref == "" {
		o.deps.Logger.Warn(ctx, "run %s: no channel upload, recipe continues without preview", run.ID)
	}

	if instructions == "" {
		o.fail(ctx, run, notify, "Не удалось извлечь рецепт из видео. Попробуйте другую ссылку.")
		return run
	}

	draft := session.RecipeDraft{
		Title:           title,
		Instructions:    instructions,
		Ingredients:     ingredients,
		DistributionRef: ref,
	}
	o.deps.Sessions.PutDraft(chatID, draft)
	run.Stage = StageDone
	notify.Progress(ctx, 100, "Готово ✅")
	o.deps.Logger.Info(ctx, "run %s done: %q", run.ID, title)
	if o.deps.OnReady != nil {
		o.deps.OnReady(ctx, chatID, draft)
	}
	return run
}

// removeArtifact deletes path at most once per run, regardless of how
// many cleanup paths reach it.
func (o *Orchestrator) removeArtifact(ctx context.Context, run *Run, path string) {
	if path == "" || run.cleaned[path] {
		return
	}
	run.cleaned[path] = true
	o.deps.Remover.Remove(ctx, path)
}

// fail moves the run to StageFailed, sweeps every artifact it produced
// and reports a single terminal error to the requester.
func (o *Orchestrator) fail(ctx context.Context, run *Run, notify notifier.Notifier, msg string) {
	run.Stage = StageFailed
	for _, p := range []string{run.Artifacts.Video, run.Artifacts.Converted, run.Artifacts.Audio} {
		o.removeArtifact(ctx, run, p)
	}
	notify.Error(ctx, msg)
}
