package i18n

import (
	"strings"

	"github.com/yassink/reclaim/internal/progress"
)

const (
	LanguageEnglish = "en"
	LanguageArabic  = "ar"
)

// Normalize maps arbitrary language input onto a supported code, or ""
// when unrecognized.
func Normalize(raw string) string {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	if trimmed == "" {
		return ""
	}
	if strings.HasPrefix(trimmed, "ar") {
		return LanguageArabic
	}
	if strings.HasPrefix(trimmed, "en") {
		return LanguageEnglish
	}
	return ""
}

// Toggle flips between the two supported languages.
func Toggle(lang string) string {
	if lang == LanguageArabic {
		return LanguageEnglish
	}
	return LanguageArabic
}

// Catalog holds every user-facing string for one language.
type Catalog struct {
	AppTitle     string
	Home         string
	History      string
	Journal      string
	Tasks        string
	CleanDays    string
	StartDate    string
	BestStreak   string
	Clean        string
	Slips        string
	Relapses     string
	DailyCheckin string
	StayedClean  string
	HadSlip      string
	HadRelapse   string
	ResetCheckin string
	ResetTitle   string
	ResetConfirm string
	ProgressFor  string
	NewTask      string
	WriteTitle   string
	SaveEntry    string
	DeleteTask   string
	Login        string
	Username     string
	Password     string
	Welcome      string
	Logout       string
	BadLogin     string

	WeekDays      [7]string
	Notifications map[progress.Status]string
	DefaultTasks  []string
}

// T returns the catalog for lang, falling back to English.
func T(lang string) Catalog {
	if Normalize(lang) == LanguageArabic {
		return arabic
	}
	return english
}

// JournalTitle builds the colored title shown on a journal entry.
func (c Catalog) JournalTitle(status progress.Status) string {
	switch status {
	case progress.StatusSlip:
		return "🟠 " + c.Slips
	case progress.StatusRelapse:
		return "🔴 " + c.Relapses
	default:
		return "🟢 " + c.Clean
	}
}

var english = Catalog{
	AppTitle:     "Recovery Heroes 🎯",
	Home:         "Home",
	History:      "History",
	Journal:      "Journal",
	Tasks:        "Tasks",
	CleanDays:    "Victory Streak 🔥",
	StartDate:    "Started Recovery",
	BestStreak:   "Best Streak",
	Clean:        "Clean",
	Slips:        "Slips",
	Relapses:     "Relapses",
	DailyCheckin: "How was your day today?",
	StayedClean:  "I stayed clean",
	HadSlip:      "It was a slip",
	HadRelapse:   "I had a relapse",
	ResetCheckin: "Reset today's check-in",
	ResetTitle:   "Reset progress",
	ResetConfirm: "Are you sure you want to reset all progress? This cannot be undone.",
	ProgressFor:  "Your progress for",
	NewTask:      "New task name...",
	WriteTitle:   "Write your thoughts for today...",
	SaveEntry:    "Save entry",
	DeleteTask:   "Delete task",
	Login:        "Login",
	Username:     "Username",
	Password:     "Password",
	Welcome:      "Welcome",
	Logout:       "Logout",
	BadLogin:     "Invalid username or password",

	WeekDays: [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
	Notifications: map[progress.Status]string{
		progress.StatusClean:   "Great job staying clean today! Keep going strong! 💪",
		progress.StatusSlip:    "Remember, a slip is not a fall. Get back up and keep going! 🌟",
		progress.StatusRelapse: "Every new day is a fresh start. You're stronger than you think! ❤️",
	},
	DefaultTasks: []string{
		"Praying",
		"Reading",
		"Hobbies",
		"Talking to friends",
		"Other custom tasks",
	},
}

var arabic = Catalog{
	AppTitle:     "أبطال التعافي 🎯",
	Home:         "الرئيسية",
	History:      "السجل",
	Journal:      "المذكرات",
	Tasks:        "المهام",
	CleanDays:    "سلسلة الانتصارات 🔥",
	StartDate:    "بدء التعافي",
	BestStreak:   "أفضل سلسلة",
	Clean:        "نظيف",
	Slips:        "زلات",
	Relapses:     "انتكاسات",
	DailyCheckin: "كيف كان يومك اليوم؟",
	StayedClean:  "بقيت نظيفاً",
	HadSlip:      "كانت زلة",
	HadRelapse:   "حدثت انتكاسة",
	ResetCheckin: "إعادة تسجيل اليوم",
	ResetTitle:   "إعادة تعيين التقدم",
	ResetConfirm: "هل أنت متأكد من إعادة تعيين كل التقدم؟ لا يمكن التراجع عن هذا.",
	ProgressFor:  "تقدمك لشهر",
	NewTask:      "اسم المهمة الجديدة...",
	WriteTitle:   "اكتب أفكارك لليوم...",
	SaveEntry:    "حفظ المدخل",
	DeleteTask:   "حذف المهمة",
	Login:        "تسجيل الدخول",
	Username:     "اسم المستخدم",
	Password:     "كلمة المرور",
	Welcome:      "مرحباً",
	Logout:       "تسجيل الخروج",
	BadLogin:     "اسم المستخدم أو كلمة المرور غير صحيحة",

	WeekDays: [7]string{"الأحد", "الإثنين", "الثلاثاء", "الأربعاء", "الخميس", "الجمعة", "السبت"},
	Notifications: map[progress.Status]string{
		progress.StatusClean:   "عمل رائع في البقاء نظيفاً اليوم! استمر قوياً! 💪",
		progress.StatusSlip:    "تذكر، الزلة ليست سقوطاً. انهض واستمر! 🌟",
		progress.StatusRelapse: "كل يوم جديد هو بداية جديدة. أنت أقوى مما تعتقد! ❤️",
	},
	DefaultTasks: []string{
		"الصلاة",
		"القراءة",
		"الهوايات",
		"التحدث مع الأصدقاء",
		"مهام مخصصة أخرى",
	},
}
