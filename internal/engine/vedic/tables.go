package vedic

var nakshatras = [27]string{
	"Ashwini", "Bharani", "Krittika", "Rohini", "Mrigashira", "Ardra", "Punarvasu", "Pushya", "Ashlesha",
	"Magha", "Purva Phalguni", "Uttara Phalguni", "Hasta", "Chitra", "Swati", "Vishakha", "Anuradha", "Jyeshtha",
	"Mula", "Purva Ashadha", "Uttara Ashadha", "Shravana", "Dhanishtha", "Shatabhisha", "Purva Bhadrapada", "Uttara Bhadrapada", "Revati",
}

var signs = [12]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

var signLords = [12]string{
	"Mars", "Venus", "Mercury", "Moon", "Sun", "Mercury",
	"Venus", "Mars", "Jupiter", "Saturn", "Saturn", "Jupiter",
}

// nakshatraLords repeats every nine nakshatras, in Vimshottari order.
var nakshatraLords = [9]string{"Ketu", "Venus", "Sun", "Moon", "Mars", "Rahu", "Jupiter", "Saturn", "Mercury"}

var ganaByNakshatra = map[string]string{
	"Ashwini": "Deva", "Bharani": "Manushya", "Krittika": "Rakshasa",
	"Rohini": "Manushya", "Mrigashira": "Deva", "Ardra": "Manushya",
	"Punarvasu": "Deva", "Pushya": "Deva", "Ashlesha": "Rakshasa",
	"Magha": "Rakshasa", "Purva Phalguni": "Manushya", "Uttara Phalguni": "Manushya",
	"Hasta": "Deva", "Chitra": "Rakshasa", "Swati": "Deva",
	"Vishakha": "Rakshasa", "Anuradha": "Deva", "Jyeshtha": "Rakshasa",
	"Mula": "Rakshasa", "Purva Ashadha": "Manushya", "Uttara Ashadha": "Manushya",
	"Shravana": "Deva", "Dhanishtha": "Rakshasa", "Shatabhisha": "Rakshasa",
	"Purva Bhadrapada": "Manushya", "Uttara Bhadrapada": "Manushya", "Revati": "Deva",
}

var yoniByNakshatra = map[string]string{
	"Ashwini": "Horse", "Bharani": "Elephant", "Krittika": "Sheep",
	"Rohini": "Snake", "Mrigashira": "Serpent", "Ardra": "Dog",
	"Punarvasu": "Cat", "Pushya": "Goat", "Ashlesha": "Cat",
	"Magha": "Rat", "Purva Phalguni": "Rat", "Uttara Phalguni": "Cow",
	"Hasta": "Buffalo", "Chitra": "Tiger", "Swati": "Buffalo",
	"Vishakha": "Tiger", "Anuradha": "Deer", "Jyeshtha": "Deer",
	"Mula": "Dog", "Purva Ashadha": "Monkey", "Uttara Ashadha": "Mongoose",
	"Shravana": "Monkey", "Dhanishtha": "Lion", "Shatabhisha": "Horse",
	"Purva Bhadrapada": "Lion", "Uttara Bhadrapada": "Cow", "Revati": "Elephant",
}

var nadiByNakshatra = map[string]string{
	"Ashwini": "Aadi", "Bharani": "Madhya", "Krittika": "Antya",
	"Rohini": "Antya", "Mrigashira": "Madhya", "Ardra": "Aadi",
	"Punarvasu": "Aadi", "Pushya": "Madhya", "Ashlesha": "Antya",
	"Magha": "Antya", "Purva Phalguni": "Madhya", "Uttara Phalguni": "Aadi",
	"Hasta": "Aadi", "Chitra": "Madhya", "Swati": "Antya",
	"Vishakha": "Antya", "Anuradha": "Madhya", "Jyeshtha": "Aadi",
	"Mula": "Aadi", "Purva Ashadha": "Madhya", "Uttara Ashadha": "Antya",
	"Shravana": "Antya", "Dhanishtha": "Madhya", "Shatabhisha": "Aadi",
	"Purva Bhadrapada": "Aadi", "Uttara Bhadrapada": "Madhya", "Revati": "Antya",
}

var varanBySign = map[int]string{
	1: "Kshatriya", 2: "Vaishya", 3: "Shudra", 4: "Brahmin",
	5: "Kshatriya", 6: "Vaishya", 7: "Shudra", 8: "Brahmin",
	9: "Kshatriya", 10: "Vaishya", 11: "Shudra", 12: "Brahmin",
}

var vashyaBySign = map[int]string{
	1: "Chatushpada", 2: "Chatushpada", 3: "Manava", 4: "Jalachara",
	5: "Vanachara", 6: "Manava", 7: "Manava", 8: "Keeta",
	9: "Chatushpada", 10: "Jalachara", 11: "Manava", 12: "Jalachara",
}

var ghatakBySign = map[int]struct{ month, tithi, day, nakshatra string }{
	1:  {"Kartik", "1, 6, 11", "Sunday", "Magha"},
	2:  {"Margashirsha", "5, 10, 15", "Saturday", "Rohini"},
	3:  {"Pausha", "2, 7, 12", "Monday", "Ardra"},
	4:  {"Magha", "2, 7, 12", "Wednesday", "Pushya"},
	5:  {"Phalguna", "3, 8, 13", "Saturday", "Hasta"},
	6:  {"Chaitra", "5, 10, 15", "Saturday", "Chitra"},
	7:  {"Vaishakha", "4, 9, 14", "Thursday", "Vishakha"},
	8:  {"Jyeshtha", "1, 6, 11", "Friday", "Anuradha"},
	9:  {"Ashadha", "3, 8, 13", "Sunday", "Mula"},
	10: {"Shravana", "4, 9, 14", "Tuesday", "Shravana"},
	11: {"Bhadrapada", "4, 9, 14", "Thursday", "Shatabhisha"},
	12: {"Ashvina", "3, 8, 13", "Friday", "Revati"},
}
