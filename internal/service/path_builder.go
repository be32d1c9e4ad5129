package service

import (
	"fmt"
	"path"
	"regexp"
	"strings"
	"time"

	"hr-document-server/internal/model"
)

// Построение путей и имён файлов в удалённом хранилище.
// Имя файла включает номера последовательностей и метку времени
// с миллисекундами, поэтому параллельные загрузки по одному сотруднику
// не требуют проверки существования объекта.

const maxFolderSegmentLength = 50

var (
	unsafeChars   = regexp.MustCompile(`[^A-Za-z0-9_-]`)
	dashRuns      = regexp.MustCompile(`-{2,}`)
	timestampSafe = strings.NewReplacer(":", "-", ".", "-")
)

// SanitizeSegment : заменяет небезопасные символы на "-", схлопывает повторы
// и обрезает сегмент до максимальной длины
func SanitizeSegment(segment string) string {
	sanitized := unsafeChars.ReplaceAllString(segment, "-")
	sanitized = dashRuns.ReplaceAllString(sanitized, "-")
	sanitized = strings.Trim(sanitized, "-")
	if len(sanitized) > maxFolderSegmentLength {
		sanitized = sanitized[:maxFolderSegmentLength]
	}
	return sanitized
}

// BuildFolderPath : детерминированный путь папки для категории документа.
// Сегменты включают номера последовательностей компании (C) и сотрудника (E).
func BuildFolderPath(spec model.CategorySpec, meta *model.PathMetadata) (string, error) {
	if meta == nil || meta.CompanySequence == nil {
		return "", model.NewConfigurationError("отсутствует номер последовательности компании")
	}

	companySegment := fmt.Sprintf("%s-C%d", SanitizeSegment(meta.CompanyName), *meta.CompanySequence)
	if meta.CompanyName == "" {
		companySegment = fmt.Sprintf("C%d", *meta.CompanySequence)
	}

	segments := []string{companySegment}

	if spec.EmployeeScoped {
		if meta.EmployeeSequence == nil {
			return "", model.NewConfigurationError("отсутствует номер последовательности сотрудника")
		}
		employeeSegment := fmt.Sprintf("%s-E%d", SanitizeSegment(meta.EmployeeName), *meta.EmployeeSequence)
		if meta.EmployeeName == "" {
			employeeSegment = fmt.Sprintf("E%d", *meta.EmployeeSequence)
		}
		segments = append(segments, employeeSegment)
	}

	segments = append(segments, spec.Folder)

	return path.Join(segments...), nil
}

// BuildFileName : имя файла вида
// {prefix}_{short}_C{cSeq}_E{eSeq}[_F{formSeq}]_{timestamp}.{ext}
// Метка времени — ISO8601 с заменой ":" и "." на "-".
func BuildFileName(originalName string, spec model.CategorySpec, meta *model.PathMetadata, now time.Time) (string, error) {
	if meta == nil || meta.CompanySequence == nil {
		return "", model.NewConfigurationError("отсутствует номер последовательности компании")
	}

	parts := []string{spec.FilePrefix, spec.ShortCode, fmt.Sprintf("C%d", *meta.CompanySequence)}

	if spec.EmployeeScoped {
		if meta.EmployeeSequence == nil {
			return "", model.NewConfigurationError("отсутствует номер последовательности сотрудника")
		}
		parts = append(parts, fmt.Sprintf("E%d", *meta.EmployeeSequence))
	}

	if meta.FormSequence != nil {
		parts = append(parts, fmt.Sprintf("F%d", *meta.FormSequence))
	}

	timestamp := timestampSafe.Replace(now.UTC().Format("2006-01-02T15:04:05.000Z"))
	parts = append(parts, timestamp)

	extension := strings.ToLower(path.Ext(originalName))

	return strings.Join(parts, "_") + extension, nil
}
