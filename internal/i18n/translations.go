package i18n

import "strings"

// Catalog maps a language to its key/value translation table.
type Catalog map[Language]map[string]string

const provincePlaceholder = "{province}"

// NewCatalog fills the province name into every table. An empty Thai name
// falls back to the English one.
func NewCatalog(thaiName, englishName string) Catalog {
	if thaiName == "" {
		thaiName = englishName
	}
	return Catalog{
		Thai:    withProvince(thai, thaiName),
		English: withProvince(english, englishName),
	}
}

func DefaultCatalog() Catalog {
	return NewCatalog("เชียงใหม่", "Chiang Mai")
}

func withProvince(table map[string]string, name string) map[string]string {
	out := make(map[string]string, len(table))
	for key, value := range table {
		out[key] = strings.ReplaceAll(value, provincePlaceholder, name)
	}
	return out
}

var thai = map[string]string{
	"site.name":    "เที่ยว{province}",
	"site.tagline": "ค้นพบวัด ธรรมชาติ อาหาร และเทศกาลของ{province}",

	"nav.home":         "หน้าแรก",
	"nav.destinations": "สถานที่ท่องเที่ยว",
	"nav.events":       "กิจกรรม",
	"nav.blogs":        "บทความ",
	"nav.weather":      "สภาพอากาศ",
	"nav.about":        "เกี่ยวกับเรา",
	"nav.contact":      "ติดต่อเรา",
	"nav.language":     "ภาษา",

	"hero.title":    "สัมผัสเสน่ห์{province}",
	"hero.subtitle": "วัดเก่าแก่ ธรรมชาติ ตลาดกลางคืน และอาหารท้องถิ่นรสเด็ด",
	"hero.cta":      "เริ่มสำรวจ",

	"section.destinations": "สถานที่แนะนำ",
	"section.events":       "กิจกรรมที่กำลังจะมาถึง",
	"section.blogs":        "บทความท่องเที่ยว",
	"section.ads":          "ข้อเสนอพิเศษ",
	"section.weather":      "สภาพอากาศวันนี้",
	"section.community":    "จากชุมชนของเรา",

	"common.loading":   "กำลังโหลด...",
	"common.retry":     "ลองใหม่",
	"common.error":     "เกิดข้อผิดพลาด",
	"common.empty":     "ยังไม่มีข้อมูล",
	"common.viewMore":  "ดูเพิ่มเติม",
	"common.openNow":   "เปิดอยู่",
	"common.closedNow": "ปิดแล้ว",
	"common.reviews":   "รีวิว",
	"common.by":        "โดย",
	"common.readTime":  "เวลาอ่าน",
	"common.validTo":   "ถึงวันที่",
	"common.map":       "ดูแผนที่",

	"weather.temperature": "อุณหภูมิ",
	"weather.feelsLike":   "รู้สึกเหมือน",
	"weather.humidity":    "ความชื้น",
	"weather.pressure":    "ความกดอากาศ",
	"weather.wind":        "ลม",
	"weather.forecast":    "พยากรณ์อากาศ 5 วัน",
	"weather.air":         "คุณภาพอากาศ",
	"weather.aqi":         "ดัชนีคุณภาพอากาศ",

	"place.title":   "รายละเอียดสถานที่",
	"place.address": "ที่อยู่",
	"place.rating":  "คะแนน",
	"place.types":   "ประเภท",

	"notFound.title":   "ไม่พบหน้าที่คุณต้องการ",
	"notFound.message": "หน้านี้อาจถูกย้ายหรือยังไม่เปิดให้บริการ",
	"notFound.back":    "กลับหน้าแรก",

	"footer.copyright": "© เที่ยว{province} สงวนลิขสิทธิ์",
	"footer.data":      "ข้อมูลสถานที่และสภาพอากาศจากผู้ให้บริการภายนอก",
}

var english = map[string]string{
	"site.name":    "Visit {province}",
	"site.tagline": "Discover the temples, nature, food and festivals of {province}",

	"nav.home":         "Home",
	"nav.destinations": "Destinations",
	"nav.events":       "Events",
	"nav.blogs":        "Blog",
	"nav.weather":      "Weather",
	"nav.about":        "About",
	"nav.contact":      "Contact",
	"nav.language":     "Language",

	"hero.title":    "Feel the charm of {province}",
	"hero.subtitle": "Historic temples, nature, night markets and local food",
	"hero.cta":      "Start exploring",

	"section.destinations": "Recommended destinations",
	"section.events":       "Upcoming events",
	"section.blogs":        "Travel stories",
	"section.ads":          "Special offers",
	"section.weather":      "Today's weather",
	"section.community":    "From our community",

	"common.loading":   "Loading...",
	"common.retry":     "Try again",
	"common.error":     "Something went wrong",
	"common.empty":     "Nothing here yet",
	"common.viewMore":  "View more",
	"common.openNow":   "Open now",
	"common.closedNow": "Closed",
	"common.reviews":   "reviews",
	"common.by":        "by",
	"common.readTime":  "Read time",
	"common.validTo":   "Valid until",
	"common.map":       "Open map",

	"weather.temperature": "Temperature",
	"weather.feelsLike":   "Feels like",
	"weather.humidity":    "Humidity",
	"weather.pressure":    "Pressure",
	"weather.wind":        "Wind",
	"weather.forecast":    "5-day forecast",
	"weather.air":         "Air quality",
	"weather.aqi":         "Air quality index",

	"place.title":   "Place details",
	"place.address": "Address",
	"place.rating":  "Rating",
	"place.types":   "Types",

	"notFound.title":   "Page not found",
	"notFound.message": "This page may have moved or is not available yet",
	"notFound.back":    "Back to home",

	"footer.copyright": "© Visit {province}. All rights reserved",
	"footer.data":      "Place and weather data from third-party providers",
}
