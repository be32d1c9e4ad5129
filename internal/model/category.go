package model

// Категории документов и связанные с ними типы бизнес-записей.
// Тип записи из запроса однозначно определяет категорию документа.
const (
	ReferenceAccidentReport  = "accident_report"
	ReferenceIllnessReport   = "illness_report"
	ReferenceDepartureReport = "departure_report"
	ReferenceReceipt         = "receipt"

	CategoryMedicalCertificate = "medical_certificate"
	CategoryIllnessCertificate = "illness_certificate"
	CategoryDepartureDocument  = "departure_document"
	CategoryReceipt            = "receipt"
)

// CategorySpec : правила построения пути и имени файла для категории
type CategorySpec struct {
	Category       string
	FilePrefix     string
	ShortCode      string
	Folder         string
	EmployeeScoped bool // false для документов уровня компании (чеки)
}

var categoryByReference = map[string]CategorySpec{
	ReferenceAccidentReport: {
		Category:       CategoryMedicalCertificate,
		FilePrefix:     "med-cert",
		ShortCode:      "ACC",
		Folder:         "medical-certificates",
		EmployeeScoped: true,
	},
	ReferenceIllnessReport: {
		Category:       CategoryIllnessCertificate,
		FilePrefix:     "ill-cert",
		ShortCode:      "ILL",
		Folder:         "illness-certificates",
		EmployeeScoped: true,
	},
	ReferenceDepartureReport: {
		Category:       CategoryDepartureDocument,
		FilePrefix:     "dep-doc",
		ShortCode:      "DEP",
		Folder:         "departure-documents",
		EmployeeScoped: true,
	},
	ReferenceReceipt: {
		Category:       CategoryReceipt,
		FilePrefix:     "receipt",
		ShortCode:      "RCP",
		Folder:         "receipts",
		EmployeeScoped: false,
	},
}

// CategoryForReference : возвращает правила категории по типу бизнес-записи
func CategoryForReference(referenceType string) (CategorySpec, bool) {
	spec, ok := categoryByReference[referenceType]
	return spec, ok
}

// ReferenceTypeAllowed : проверяет тип бизнес-записи по фиксированному списку
func ReferenceTypeAllowed(referenceType string) bool {
	_, ok := categoryByReference[referenceType]
	return ok
}
