package pipeline

// Stage is a run's position in the state machine. Stages advance in the
// declared order, with two sanctioned overlaps: the channel upload runs
// alongside audio extraction and transcription, and is joined after the
// extraction stage.
type Stage string

const (
	StageStarted         Stage = "started"
	StageDownloading     Stage = "downloading"
	StageDownloaded      Stage = "downloaded"
	StageConverting      Stage = "converting"
	StageUploading       Stage = "uploading"
	StageAudioExtracting Stage = "audio_extracting"
	StageTranscribing    Stage = "transcribing"
	StageExtracting      Stage = "extracting"
	StageDone            Stage = "done"
	StageFailed          Stage = "failed"
)
