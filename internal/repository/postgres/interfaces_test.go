package postgres

import (
	"github.com/yourusername/question-bank-api/internal/domain/repository"
)

// Проверки соответствия реализаций декларированным интерфейсам.
// Расхождение сигнатур ломает компиляцию пакета, а не рантайм.
var (
	_ repository.QuestionRepository        = (*QuestionRepo)(nil)
	_ repository.ChoiceRepository          = (*ChoiceRepo)(nil)
	_ repository.SolutionRepository        = (*SolutionRepo)(nil)
	_ repository.QuestionContentRepository = (*QuestionContentRepo)(nil)
	_ repository.QuestionSourceRepository  = (*QuestionSourceRepo)(nil)
	_ repository.AreaRepository            = (*AreaRepo)(nil)
	_ repository.SourceRepository          = (*SourceRepo)(nil)
	_ repository.ReferenceRepository       = (*ReferenceRepo)(nil)
	_ repository.CourseRepository          = (*CourseRepo)(nil)
	_ repository.TopicRepository           = (*TopicRepo)(nil)
	_ repository.SubtopicRepository        = (*SubtopicRepo)(nil)
	_ repository.InstitutionRepository     = (*InstitutionRepo)(nil)
)
