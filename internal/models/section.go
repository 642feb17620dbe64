package models

// SectionKey — ключ singleton-раздела сайта.
type SectionKey string

const (
	SectionHero         SectionKey = "hero"
	SectionAbout        SectionKey = "about"
	SectionContact      SectionKey = "contact"
	SectionFooter       SectionKey = "footer"
	SectionExperience   SectionKey = "experience-section"
	SectionProjects     SectionKey = "projects-section"
	SectionSkills       SectionKey = "skills-section"
	SectionTestimonials SectionKey = "testimonials-section"
)

// HeaderSectionKeys — разделы, у которых есть только заголовок и подзаголовок.
var HeaderSectionKeys = []SectionKey{SectionExperience, SectionProjects, SectionSkills, SectionTestimonials}

// Link — ссылка на соцсеть или внешний ресурс.
type Link struct {
	Label string `json:"label" yaml:"label"`
	URL   string `json:"url" yaml:"url"`
	Icon  string `json:"icon,omitempty" yaml:"icon"`
}

// Hero — первый экран сайта.
type Hero struct {
	Greeting       string `json:"greeting" yaml:"greeting"`
	Title          string `json:"title" yaml:"title"`
	Subtitle       string `json:"subtitle" yaml:"subtitle"`
	Description    string `json:"description" yaml:"description"`
	Image          string `json:"image" yaml:"image"`
	PrimaryLabel   string `json:"primaryCtaLabel" yaml:"primaryCtaLabel"`
	PrimaryURL     string `json:"primaryCtaUrl" yaml:"primaryCtaUrl"`
	SecondaryLabel string `json:"secondaryCtaLabel" yaml:"secondaryCtaLabel"`
	SecondaryURL   string `json:"secondaryCtaUrl" yaml:"secondaryCtaUrl"`
}

// Stat — числовой показатель в блоке «Обо мне».
type Stat struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

// About — раздел «Обо мне». Выбранные навыки хранятся отдельно в about_skills.
type About struct {
	Title      string `json:"title" yaml:"title"`
	Subtitle   string `json:"subtitle" yaml:"subtitle"`
	Bio        string `json:"bio" yaml:"bio"`
	Image      string `json:"image" yaml:"image"`
	ResumeURL  string `json:"resumeUrl" yaml:"resumeUrl"`
	Stats      []Stat `json:"stats" yaml:"stats"`
	SkillTitle string `json:"skillsTitle" yaml:"skillsTitle"`
}

// Contact — контактные данные.
type Contact struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Email       string `json:"email" yaml:"email"`
	Phone       string `json:"phone" yaml:"phone"`
	Location    string `json:"location" yaml:"location"`
	Socials     []Link `json:"socials" yaml:"socials"`
}

// Footer — подвал сайта.
type Footer struct {
	Copyright string `json:"copyright" yaml:"copyright"`
	Tagline   string `json:"tagline" yaml:"tagline"`
	Links     []Link `json:"links" yaml:"links"`
}

// SectionHeader — заголовок списочного раздела (опыт, проекты, навыки, отзывы).
type SectionHeader struct {
	Title       string `json:"title" yaml:"title"`
	Subtitle    string `json:"subtitle" yaml:"subtitle"`
	Description string `json:"description" yaml:"description"`
	IsVisible   *bool  `json:"isVisible,omitempty" yaml:"isVisible"`
}
