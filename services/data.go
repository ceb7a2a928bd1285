package services

// ─── Static reference data ────────────────────────────────────────────────────
//
// Airport records carry a traffic tier used as a relevance prior when ranking
// lookup results (higher = busier). Tier values are hand-tuned and treated as
// opaque.

var airportTable = []Airport{
	// US majors
	{"ATL", "Hartsfield-Jackson Atlanta International", "Atlanta", 33.6407, -84.4277, "America/New_York", 40},
	{"LAX", "Los Angeles International", "Los Angeles", 33.9425, -118.4081, "America/Los_Angeles", 38},
	{"ORD", "O'Hare International", "Chicago", 41.9742, -87.9073, "America/Chicago", 37},
	{"DFW", "Dallas/Fort Worth International", "Dallas", 32.8998, -97.0403, "America/Chicago", 36},
	{"DEN", "Denver International", "Denver", 39.8561, -104.6737, "America/Denver", 35},
	{"JFK", "John F Kennedy International", "New York", 40.6413, -73.7781, "America/New_York", 35},
	{"SFO", "San Francisco International", "San Francisco", 37.6213, -122.3790, "America/Los_Angeles", 33},
	{"SEA", "Seattle-Tacoma International", "Seattle", 47.4502, -122.3088, "America/Los_Angeles", 32},
	{"LAS", "Harry Reid International", "Las Vegas", 36.0840, -115.1537, "America/Los_Angeles", 31},
	{"MIA", "Miami International", "Miami", 25.7959, -80.2870, "America/New_York", 31},
	{"MCO", "Orlando International", "Orlando", 28.4312, -81.3081, "America/New_York", 30},
	{"EWR", "Newark Liberty International", "Newark", 40.6895, -74.1745, "America/New_York", 30},
	{"CLT", "Charlotte Douglas International", "Charlotte", 35.2140, -80.9431, "America/New_York", 29},
	{"PHX", "Phoenix Sky Harbor International", "Phoenix", 33.4373, -112.0078, "America/Phoenix", 28},
	{"IAH", "George Bush Intercontinental", "Houston", 29.9902, -95.3368, "America/Chicago", 28},
	{"BOS", "Boston Logan International", "Boston", 42.3656, -71.0096, "America/New_York", 27},
	{"MSP", "Minneapolis-Saint Paul International", "Minneapolis", 44.8848, -93.2223, "America/Chicago", 27},
	{"FLL", "Fort Lauderdale-Hollywood International", "Fort Lauderdale", 26.0726, -80.1527, "America/New_York", 26},
	{"DTW", "Detroit Metropolitan", "Detroit", 42.2124, -83.3534, "America/Detroit", 26},
	{"PHL", "Philadelphia International", "Philadelphia", 39.8744, -75.2424, "America/New_York", 26},
	{"LGA", "LaGuardia", "New York", 40.7772, -73.8726, "America/New_York", 25},
	{"BWI", "Baltimore/Washington International", "Baltimore", 39.1754, -76.6684, "America/New_York", 25},
	{"SLC", "Salt Lake City International", "Salt Lake City", 40.7899, -111.9791, "America/Denver", 24},
	{"IAD", "Washington Dulles International", "Washington", 38.9531, -77.4565, "America/New_York", 24},
	{"DCA", "Ronald Reagan Washington National", "Washington", 38.8512, -77.0402, "America/New_York", 24},
	{"SAN", "San Diego International", "San Diego", 32.7338, -117.1933, "America/Los_Angeles", 23},
	{"TPA", "Tampa International", "Tampa", 27.9755, -82.5332, "America/New_York", 23},
	{"AUS", "Austin-Bergstrom International", "Austin", 30.1975, -97.6664, "America/Chicago", 22},
	{"BNA", "Nashville International", "Nashville", 36.1263, -86.6774, "America/Chicago", 22},
	{"PDX", "Portland International", "Portland", 45.5898, -122.5951, "America/Los_Angeles", 22},
	{"HNL", "Daniel K. Inouye International", "Honolulu", 21.3187, -157.9224, "Pacific/Honolulu", 21},
	{"MDW", "Midway International", "Chicago", 41.7868, -87.7522, "America/Chicago", 21},
	{"DAL", "Dallas Love Field", "Dallas", 32.8471, -96.8518, "America/Chicago", 20},
	{"HOU", "William P Hobby", "Houston", 29.6454, -95.2789, "America/Chicago", 20},
	{"STL", "St. Louis Lambert International", "St. Louis", 38.7487, -90.3700, "America/Chicago", 20},
	{"RDU", "Raleigh-Durham International", "Raleigh", 35.8776, -78.7875, "America/New_York", 19},
	{"SJC", "San Jose International", "San Jose", 37.3626, -121.9290, "America/Los_Angeles", 19},
	{"MSY", "Louis Armstrong New Orleans International", "New Orleans", 29.9934, -90.2580, "America/Chicago", 19},
	{"SMF", "Sacramento International", "Sacramento", 38.6954, -121.5908, "America/Los_Angeles", 18},
	{"SNA", "John Wayne Orange County", "Santa Ana", 33.6757, -117.8682, "America/Los_Angeles", 18},
	{"RSW", "Southwest Florida International", "Fort Myers", 26.5362, -81.7552, "America/New_York", 18},
	{"SAT", "San Antonio International", "San Antonio", 29.5337, -98.4698, "America/Chicago", 17},
	{"PIT", "Pittsburgh International", "Pittsburgh", 40.4957, -80.2413, "America/New_York", 17},
	{"IND", "Indianapolis International", "Indianapolis", 39.7173, -86.2944, "America/Indiana/Indianapolis", 17},
	{"CLE", "Cleveland Hopkins International", "Cleveland", 41.4117, -81.8498, "America/New_York", 16},
	{"CMH", "John Glenn Columbus International", "Columbus", 39.9980, -82.8919, "America/New_York", 16},
	{"JAX", "Jacksonville International", "Jacksonville", 30.4941, -81.6879, "America/New_York", 16},
	{"MCI", "Kansas City International", "Kansas City", 39.2976, -94.7139, "America/Chicago", 16},
	{"OAK", "Oakland International", "Oakland", 37.7213, -122.2208, "America/Los_Angeles", 16},
	{"BUR", "Hollywood Burbank", "Burbank", 34.2005, -118.3586, "America/Los_Angeles", 15},
	{"CVG", "Cincinnati/Northern Kentucky International", "Cincinnati", 39.0488, -84.6678, "America/New_York", 15},
	{"MKE", "Milwaukee Mitchell International", "Milwaukee", 42.9472, -87.8966, "America/Chicago", 15},
	{"OKC", "Will Rogers World", "Oklahoma City", 35.3931, -97.6007, "America/Chicago", 14},
	{"TUL", "Tulsa International", "Tulsa", 36.1984, -95.8881, "America/Chicago", 13},
	{"ABQ", "Albuquerque International Sunport", "Albuquerque", 35.0402, -106.6090, "America/Denver", 13},
	{"OMA", "Eppley Airfield", "Omaha", 41.3032, -95.8941, "America/Chicago", 12},
	{"ANC", "Ted Stevens Anchorage International", "Anchorage", 61.1743, -149.9962, "America/Anchorage", 12},
	{"RNO", "Reno-Tahoe International", "Reno", 39.4991, -119.7681, "America/Los_Angeles", 12},
	// US secondary / leisure / regional
	{"MEM", "Memphis International", "Memphis", 35.0424, -89.9767, "America/Chicago", 14},
	{"PBI", "Palm Beach International", "West Palm Beach", 26.6832, -80.0956, "America/New_York", 13},
	{"BDL", "Bradley International", "Hartford", 41.9389, -72.6832, "America/New_York", 12},
	{"BUF", "Buffalo Niagara International", "Buffalo", 42.9405, -78.7322, "America/New_York", 12},
	{"ORF", "Norfolk International", "Norfolk", 36.8946, -76.2012, "America/New_York", 11},
	{"RIC", "Richmond International", "Richmond", 37.5052, -77.3197, "America/New_York", 11},
	{"CHS", "Charleston International", "Charleston", 32.8986, -80.0405, "America/New_York", 12},
	{"SAV", "Savannah/Hilton Head International", "Savannah", 32.1276, -81.2021, "America/New_York", 11},
	{"DSM", "Des Moines International", "Des Moines", 41.5341, -93.6631, "America/Chicago", 10},
	{"ICT", "Wichita Dwight D Eisenhower National", "Wichita", 37.6499, -97.4331, "America/Chicago", 10},
	{"LIT", "Bill and Hillary Clinton National", "Little Rock", 34.7294, -92.2243, "America/Chicago", 10},
	{"TUS", "Tucson International", "Tucson", 32.1161, -110.9410, "America/Phoenix", 11},
	{"ELP", "El Paso International", "El Paso", 31.8072, -106.3778, "America/Denver", 10},
	{"BOI", "Boise Airport", "Boise", 43.5644, -116.2228, "America/Boise", 11},
	{"SDF", "Louisville Muhammad Ali International", "Louisville", 38.1744, -85.7360, "America/Kentucky/Louisville", 11},
	{"OGG", "Kahului", "Maui", 20.8986, -156.4305, "Pacific/Honolulu", 13},
	{"SYR", "Syracuse Hancock International", "Syracuse", 43.1112, -76.1063, "America/New_York", 10},
	{"ROC", "Frederick Douglass Greater Rochester International", "Rochester", 43.1189, -77.6724, "America/New_York", 10},
	{"GRR", "Gerald R Ford International", "Grand Rapids", 42.8808, -85.5228, "America/Detroit", 10},
	{"GSP", "Greenville-Spartanburg International", "Greenville", 34.8957, -82.2189, "America/New_York", 10},
	{"HSV", "Huntsville International", "Huntsville", 34.6372, -86.7751, "America/Chicago", 10},
	{"SRQ", "Sarasota Bradenton International", "Sarasota", 27.3954, -82.5544, "America/New_York", 11},
	{"PNS", "Pensacola International", "Pensacola", 30.4734, -87.1866, "America/Chicago", 10},
	{"XNA", "Northwest Arkansas National", "Fayetteville", 36.2819, -94.3068, "America/Chicago", 10},
	{"ONT", "Ontario International", "Ontario", 34.0560, -117.6012, "America/Los_Angeles", 13},
	{"PSP", "Palm Springs International", "Palm Springs", 33.8297, -116.5067, "America/Los_Angeles", 11},
	{"KOA", "Ellison Onizuka Kona International", "Kona", 19.7388, -156.0456, "Pacific/Honolulu", 10},
	{"LIH", "Lihue", "Kauai", 21.9760, -159.3390, "Pacific/Honolulu", 10},
	// European hubs
	{"LHR", "Heathrow", "London", 51.4700, -0.4543, "Europe/London", 39},
	{"LGW", "Gatwick", "London", 51.1537, -0.1821, "Europe/London", 25},
	{"CDG", "Charles de Gaulle", "Paris", 49.0097, 2.5479, "Europe/Paris", 35},
	{"ORY", "Orly", "Paris", 48.7233, 2.3794, "Europe/Paris", 22},
	{"FRA", "Frankfurt", "Frankfurt", 50.0379, 8.5622, "Europe/Berlin", 34},
	{"MUC", "Munich", "Munich", 48.3537, 11.7750, "Europe/Berlin", 26},
	{"AMS", "Schiphol", "Amsterdam", 52.3105, 4.7683, "Europe/Amsterdam", 33},
	{"MAD", "Adolfo Suarez Madrid-Barajas", "Madrid", 40.4983, -3.5676, "Europe/Madrid", 28},
	{"BCN", "Barcelona-El Prat", "Barcelona", 41.2971, 2.0785, "Europe/Madrid", 27},
	{"FCO", "Leonardo da Vinci-Fiumicino", "Rome", 41.8003, 12.2389, "Europe/Rome", 28},
	{"ZRH", "Zurich", "Zurich", 47.4647, 8.5492, "Europe/Zurich", 25},
	{"IST", "Istanbul", "Istanbul", 41.2753, 28.7519, "Europe/Istanbul", 33},
	{"DUB", "Dublin", "Dublin", 53.4264, -6.2499, "Europe/Dublin", 23},
	{"CPH", "Copenhagen", "Copenhagen", 55.6180, 12.6561, "Europe/Copenhagen", 23},
	{"OSL", "Oslo Gardermoen", "Oslo", 60.1976, 11.1004, "Europe/Oslo", 21},
	{"ARN", "Stockholm Arlanda", "Stockholm", 59.6519, 17.9186, "Europe/Stockholm", 21},
	{"HEL", "Helsinki-Vantaa", "Helsinki", 60.3172, 24.9633, "Europe/Helsinki", 20},
	{"LIS", "Lisbon Humberto Delgado", "Lisbon", 38.7756, -9.1354, "Europe/Lisbon", 22},
	{"VIE", "Vienna International", "Vienna", 48.1103, 16.5697, "Europe/Vienna", 22},
	{"BRU", "Brussels", "Brussels", 50.9014, 4.4844, "Europe/Brussels", 22},
	{"WAW", "Warsaw Chopin", "Warsaw", 52.1657, 20.9671, "Europe/Warsaw", 20},
	{"PRG", "Vaclav Havel Prague", "Prague", 50.1008, 14.2600, "Europe/Prague", 20},
	{"BUD", "Budapest Ferenc Liszt", "Budapest", 47.4369, 19.2556, "Europe/Budapest", 19},
	{"ATH", "Athens Eleftherios Venizelos", "Athens", 37.9364, 23.9445, "Europe/Athens", 20},
	{"EDI", "Edinburgh", "Edinburgh", 55.9500, -3.3725, "Europe/London", 19},
	{"MAN", "Manchester", "Manchester", 53.3537, -2.2750, "Europe/London", 20},
	{"MXP", "Milan Malpensa", "Milan", 45.6306, 8.7281, "Europe/Rome", 23},
	{"GVA", "Geneva", "Geneva", 46.2381, 6.1090, "Europe/Zurich", 19},
	{"KEF", "Keflavik International", "Reykjavik", 63.9850, -22.6056, "Atlantic/Reykjavik", 17},
	// Asian hubs
	{"NRT", "Narita International", "Tokyo", 35.7647, 140.3864, "Asia/Tokyo", 32},
	{"HND", "Haneda", "Tokyo", 35.5494, 139.7798, "Asia/Tokyo", 31},
	{"ICN", "Incheon International", "Seoul", 37.4602, 126.4407, "Asia/Seoul", 32},
	{"PEK", "Beijing Capital International", "Beijing", 40.0799, 116.6031, "Asia/Shanghai", 34},
	{"PVG", "Shanghai Pudong International", "Shanghai", 31.1443, 121.8083, "Asia/Shanghai", 33},
	{"HKG", "Hong Kong International", "Hong Kong", 22.3080, 113.9185, "Asia/Hong_Kong", 34},
	{"SIN", "Singapore Changi", "Singapore", 1.3644, 103.9915, "Asia/Singapore", 33},
	{"BKK", "Suvarnabhumi", "Bangkok", 13.6900, 100.7501, "Asia/Bangkok", 30},
	{"DEL", "Indira Gandhi International", "Delhi", 28.5562, 77.1000, "Asia/Kolkata", 30},
	{"BOM", "Chhatrapati Shivaji Maharaj International", "Mumbai", 19.0896, 72.8656, "Asia/Kolkata", 28},
	{"DXB", "Dubai International", "Dubai", 25.2532, 55.3657, "Asia/Dubai", 37},
	{"DOH", "Hamad International", "Doha", 25.2731, 51.6081, "Asia/Qatar", 27},
	{"MNL", "Ninoy Aquino International", "Manila", 14.5086, 121.0198, "Asia/Manila", 25},
	{"KUL", "Kuala Lumpur International", "Kuala Lumpur", 2.7456, 101.7099, "Asia/Kuala_Lumpur", 25},
	{"TPE", "Taiwan Taoyuan International", "Taipei", 25.0797, 121.2342, "Asia/Taipei", 26},
	{"AUH", "Abu Dhabi International", "Abu Dhabi", 24.4331, 54.6511, "Asia/Dubai", 24},
	{"TLV", "Ben Gurion International", "Tel Aviv", 32.0114, 34.8867, "Asia/Jerusalem", 22},
	// Canada
	{"YYZ", "Toronto Pearson International", "Toronto", 43.6777, -79.6248, "America/Toronto", 29},
	{"YVR", "Vancouver International", "Vancouver", 49.1967, -123.1815, "America/Vancouver", 24},
	{"YUL", "Montreal-Trudeau International", "Montreal", 45.4706, -73.7408, "America/Toronto", 22},
	{"YYC", "Calgary International", "Calgary", 51.1215, -114.0076, "America/Edmonton", 20},
	// Mexico
	{"MEX", "Mexico City International", "Mexico City", 19.4363, -99.0721, "America/Mexico_City", 27},
	{"CUN", "Cancun International", "Cancun", 21.0365, -86.8771, "America/Cancun", 24},
	{"GDL", "Guadalajara International", "Guadalajara", 20.5218, -103.3113, "America/Mexico_City", 18},
	{"MTY", "Monterrey International", "Monterrey", 25.7785, -100.1069, "America/Monterrey", 17},
	{"SJD", "Los Cabos International", "San Jose del Cabo", 23.1518, -109.7215, "America/Mazatlan", 16},
	{"PVR", "Gustavo Diaz Ordaz International", "Puerto Vallarta", 20.6801, -105.2544, "America/Mexico_City", 15},
	// Central America & Caribbean
	{"SJO", "Juan Santamaria International", "San Jose", 9.9939, -84.2088, "America/Costa_Rica", 16},
	{"PTY", "Tocumen International", "Panama City", 9.0714, -79.3835, "America/Panama", 18},
	{"GUA", "La Aurora International", "Guatemala City", 14.5833, -90.5275, "America/Guatemala", 14},
	{"SAL", "Oscar Arnulfo Romero International", "San Salvador", 13.4409, -89.0557, "America/El_Salvador", 13},
	{"BZE", "Philip S W Goldson International", "Belize City", 17.5391, -88.3082, "America/Belize", 10},
	{"SJU", "Luis Munoz Marin International", "San Juan", 18.4394, -66.0018, "America/Puerto_Rico", 19},
	{"MBJ", "Sangster International", "Montego Bay", 18.5037, -77.9134, "America/Jamaica", 15},
	{"KIN", "Norman Manley International", "Kingston", 17.9357, -76.7875, "America/Jamaica", 13},
	{"NAS", "Lynden Pindling International", "Nassau", 25.0390, -77.4662, "America/Nassau", 14},
	{"PUJ", "Punta Cana International", "Punta Cana", 18.5674, -68.3634, "America/Santo_Domingo", 16},
	{"SDQ", "Las Americas International", "Santo Domingo", 18.4297, -69.6689, "America/Santo_Domingo", 14},
	{"HAV", "Jose Marti International", "Havana", 22.9892, -82.4091, "America/Havana", 15},
	{"AUA", "Queen Beatrix International", "Aruba", 12.5014, -70.0152, "America/Aruba", 12},
	{"SXM", "Princess Juliana International", "St Maarten", 18.0410, -63.1089, "America/Lower_Princes", 11},
	{"STT", "Cyril E King", "St Thomas", 18.3373, -64.9734, "America/Virgin", 12},
	{"GCM", "Owen Roberts International", "Grand Cayman", 19.2928, -81.3577, "America/Cayman", 11},
	{"POS", "Piarco International", "Port of Spain", 10.5954, -61.3372, "America/Port_of_Spain", 12},
	// South America
	{"GRU", "Sao Paulo-Guarulhos International", "Sao Paulo", -23.4356, -46.4731, "America/Sao_Paulo", 28},
	{"GIG", "Rio de Janeiro-Galeao International", "Rio de Janeiro", -22.8100, -43.2506, "America/Sao_Paulo", 22},
	{"EZE", "Ministro Pistarini International", "Buenos Aires", -34.8222, -58.5358, "America/Argentina/Buenos_Aires", 23},
	{"BOG", "El Dorado International", "Bogota", 4.7016, -74.1469, "America/Bogota", 22},
	{"CTG", "Rafael Nunez International", "Cartagena", 10.4424, -75.5130, "America/Bogota", 14},
	{"MDE", "Jose Maria Cordova International", "Medellin", 6.1645, -75.4231, "America/Bogota", 16},
	{"LIM", "Jorge Chavez International", "Lima", -12.0219, -77.1143, "America/Lima", 21},
	{"CUZ", "Alejandro Velasco Astete International", "Cusco", -13.5357, -71.9388, "America/Lima", 13},
	{"SCL", "Arturo Merino Benitez International", "Santiago", -33.3930, -70.7858, "America/Santiago", 20},
	{"UIO", "Mariscal Sucre International", "Quito", -0.1292, -78.3575, "America/Guayaquil", 16},
	{"GYE", "Jose Joaquin de Olmedo International", "Guayaquil", -2.1574, -79.8837, "America/Guayaquil", 14},
	{"CCS", "Simon Bolivar International", "Caracas", 10.6012, -66.9912, "America/Caracas", 17},
	{"MVD", "Carrasco International", "Montevideo", -34.8384, -56.0308, "America/Montevideo", 15},
	{"ASU", "Silvio Pettirossi International", "Asuncion", -25.2400, -57.5190, "America/Asuncion", 12},
	{"VVI", "Viru Viru International", "Santa Cruz", -17.6448, -63.1354, "America/La_Paz", 11},
	{"LPB", "El Alto International", "La Paz", -16.5133, -68.1923, "America/La_Paz", 11},
	// Oceania
	{"SYD", "Sydney Kingsford Smith", "Sydney", -33.9461, 151.1772, "Australia/Sydney", 29},
	{"MEL", "Melbourne Tullamarine", "Melbourne", -37.6690, 144.8410, "Australia/Melbourne", 25},
	{"BNE", "Brisbane", "Brisbane", -27.3842, 153.1175, "Australia/Brisbane", 22},
	{"AKL", "Auckland", "Auckland", -37.0082, 174.7850, "Pacific/Auckland", 21},
	{"PPT", "Faaa International", "Tahiti", -17.5537, -149.6073, "Pacific/Tahiti", 12},
	{"NAN", "Nadi International", "Nadi", -17.7554, 177.4431, "Pacific/Fiji", 13},
	// Africa
	{"JNB", "O R Tambo International", "Johannesburg", -26.1392, 28.2460, "Africa/Johannesburg", 24},
	{"CAI", "Cairo International", "Cairo", 30.1219, 31.4056, "Africa/Cairo", 22},
	{"CMN", "Mohammed V International", "Casablanca", 33.3675, -7.5900, "Africa/Casablanca", 18},
	{"ADD", "Bole International", "Addis Ababa", 8.9779, 38.7993, "Africa/Addis_Ababa", 20},
	{"NBO", "Jomo Kenyatta International", "Nairobi", -1.3192, 36.9278, "Africa/Nairobi", 18},
	{"LOS", "Murtala Muhammed International", "Lagos", 6.5774, 3.3211, "Africa/Lagos", 17},
	{"CPT", "Cape Town International", "Cape Town", -33.9649, 18.6017, "Africa/Johannesburg", 19},
}

// ─── Airline database ─────────────────────────────────────────────────────────

var airlineTable = []Airline{
	{"UA", "United Airlines", []string{"ORD", "IAH", "EWR", "DEN", "SFO", "LAX"}},
	{"DL", "Delta Air Lines", []string{"ATL", "DTW", "MSP", "SLC", "JFK", "LAX", "SEA", "BOS"}},
	{"AA", "American Airlines", []string{"DFW", "CLT", "MIA", "PHX", "PHL", "ORD", "LAX", "JFK"}},
	{"WN", "Southwest Airlines", []string{"MDW", "DAL", "HOU", "LAS", "BWI", "DEN", "OAK", "PHX"}},
	{"BA", "British Airways", []string{"LHR", "LGW"}},
	{"LH", "Lufthansa", []string{"FRA", "MUC"}},
	{"AF", "Air France", []string{"CDG", "ORY"}},
	{"NH", "All Nippon Airways", []string{"NRT", "HND"}},
	{"JL", "Japan Airlines", []string{"NRT", "HND"}},
	{"KE", "Korean Air", []string{"ICN"}},
	{"SQ", "Singapore Airlines", []string{"SIN"}},
	{"EK", "Emirates", []string{"DXB"}},
	{"QR", "Qatar Airways", []string{"DOH"}},
	{"AC", "Air Canada", []string{"YYZ", "YVR", "YUL"}},
	{"AS", "Alaska Airlines", []string{"SEA", "PDX", "SFO", "LAX", "ANC"}},
	{"B6", "JetBlue Airways", []string{"JFK", "BOS", "FLL", "MCO", "SJU"}},
	{"NK", "Spirit Airlines", []string{"FLL", "LAS", "DTW", "MCO", "DFW"}},
	{"F9", "Frontier Airlines", []string{"DEN", "LAS", "MCO", "PHX"}},
	{"KL", "KLM Royal Dutch Airlines", []string{"AMS"}},
	{"IB", "Iberia", []string{"MAD", "BCN"}},
	{"QF", "Qantas", []string{"SYD", "MEL", "BNE"}},
	{"TK", "Turkish Airlines", []string{"IST"}},
	{"AM", "Aeromexico", []string{"MEX", "GDL", "MTY", "CUN"}},
	{"AV", "Avianca", []string{"BOG", "MDE", "CTG"}},
	{"LA", "LATAM Airlines", []string{"SCL", "LIM", "GRU", "EZE"}},
	{"CM", "Copa Airlines", []string{"PTY"}},
	{"AR", "Aerolineas Argentinas", []string{"EZE"}},
	{"G3", "Gol Linhas Aereas", []string{"GRU", "GIG"}},
	{"Y4", "Volaris", []string{"MEX", "GDL", "CUN", "MTY"}},
}

var aircraftCodes = []string{"738", "739", "320", "321", "77W", "789", "359", "388"}

// Hub airports used when generating one-stop connections.
var connectionHubs = []string{
	"ORD", "DFW", "ATL", "DEN", "IAH", "CLT", "PHX", "MSP", "DTW", "EWR",
	"LHR", "FRA", "AMS", "IST", "DXB", "SIN", "NRT", "ICN",
	"MEX", "PTY", "BOG", "GRU", "SCL", "LIM", "EZE",
}

// ─── Cabin class tables ───────────────────────────────────────────────────────

var cabinMultipliers = map[string]float64{
	"ECONOMY":         1.0,
	"PREMIUM_ECONOMY": 1.8,
	"BUSINESS":        3.5,
	"FIRST":           6.0,
}

var cabinBags = map[string]int{
	"ECONOMY":         0,
	"PREMIUM_ECONOMY": 1,
	"BUSINESS":        2,
	"FIRST":           3,
}

var cabinBookingClass = map[string]string{
	"ECONOMY":         "Y",
	"PREMIUM_ECONOMY": "W",
	"BUSINESS":        "J",
	"FIRST":           "F",
}

// ─── Region timezone sets (carrier pool classification) ───────────────────────

var usZones = map[string]bool{
	"America/New_York": true, "America/Chicago": true, "America/Denver": true,
	"America/Los_Angeles": true, "America/Phoenix": true, "America/Detroit": true,
	"America/Indiana/Indianapolis": true, "America/Anchorage": true, "Pacific/Honolulu": true,
	"America/Boise": true, "America/Kentucky/Louisville": true,
	"America/Puerto_Rico": true, "America/Virgin": true,
}

var latamZones = map[string]bool{
	"America/Mexico_City": true, "America/Cancun": true, "America/Monterrey": true,
	"America/Mazatlan": true, "America/Costa_Rica": true, "America/Panama": true,
	"America/Guatemala": true, "America/El_Salvador": true, "America/Belize": true,
	"America/Jamaica": true, "America/Nassau": true, "America/Santo_Domingo": true,
	"America/Havana": true, "America/Aruba": true, "America/Lower_Princes": true,
	"America/Cayman": true, "America/Port_of_Spain": true,
	"America/Sao_Paulo": true, "America/Argentina/Buenos_Aires": true,
	"America/Bogota": true, "America/Lima": true, "America/Santiago": true,
	"America/Guayaquil": true, "America/Caracas": true, "America/Montevideo": true,
	"America/Asuncion": true, "America/La_Paz": true,
}

var canadaZones = map[string]bool{
	"America/Toronto": true, "America/Vancouver": true, "America/Edmonton": true,
}
