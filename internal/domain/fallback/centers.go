package fallback

import "github.com/paris-green-explorer/internal/domain"

// unitCenters - приблизительные центры округов по коду
var unitCenters = map[string]domain.LatLng{
	"1": {Lat: 48.8605, Lng: 2.3426},
	"2": {Lat: 48.8683, Lng: 2.3431},
	"3": {Lat: 48.8654, Lng: 2.3612},
	"4": {Lat: 48.8543, Lng: 2.3574},
	"5": {Lat: 48.8448, Lng: 2.3493},
	"6": {Lat: 48.8495, Lng: 2.3324},
	"7": {Lat: 48.8577, Lng: 2.3119},
	"8": {Lat: 48.8743, Lng: 2.3099},
	"9": {Lat: 48.8765, Lng: 2.3372},
	"10": {Lat: 48.8764, Lng: 2.3603},
	"11": {Lat: 48.8603, Lng: 2.3793},
	"12": {Lat: 48.8406, Lng: 2.3888},
	"13": {Lat: 48.8322, Lng: 2.3561},
	"14": {Lat: 48.8313, Lng: 2.3254},
	"15": {Lat: 48.8412, Lng: 2.2989},
	"16": {Lat: 48.8638, Lng: 2.2769},
	"17": {Lat: 48.8872, Lng: 2.3048},
	"18": {Lat: 48.8924, Lng: 2.3444},
	"19": {Lat: 48.8817, Lng: 2.3825},
	"20": {Lat: 48.8639, Lng: 2.3985},
}

// districtCenters - приблизительные координаты кварталов по id
var districtCenters = map[string]domain.LatLng{
	"q1": {Lat: 48.8597, Lng: 2.3412},
	"q2": {Lat: 48.8619, Lng: 2.3451},
	"q3": {Lat: 48.8643, Lng: 2.3377},
	"q4": {Lat: 48.8679, Lng: 2.3296},
	"q5": {Lat: 48.8698, Lng: 2.3344},
	"q6": {Lat: 48.8683, Lng: 2.3399},
	"q7": {Lat: 48.8666, Lng: 2.3465},
	"q8": {Lat: 48.8695, Lng: 2.3498},
	"q9": {Lat: 48.8656, Lng: 2.3568},
	"q10": {Lat: 48.8634, Lng: 2.3624},
	"q11": {Lat: 48.8621, Lng: 2.3579},
	"q12": {Lat: 48.8606, Lng: 2.3561},
	"q13": {Lat: 48.8589, Lng: 2.3509},
	"q14": {Lat: 48.8554, Lng: 2.3587},
	"q15": {Lat: 48.8503, Lng: 2.3652},
	"q16": {Lat: 48.8534, Lng: 2.3488},
	"q17": {Lat: 48.8476, Lng: 2.3539},
	"q18": {Lat: 48.8432, Lng: 2.3594},
	"q19": {Lat: 48.8418, Lng: 2.3438},
	"q20": {Lat: 48.8488, Lng: 2.3441},
	"q21": {Lat: 48.8539, Lng: 2.3395},
	"q22": {Lat: 48.8508, Lng: 2.3388},
	"q23": {Lat: 48.8459, Lng: 2.3281},
	"q24": {Lat: 48.8541, Lng: 2.3324},
	"q25": {Lat: 48.8568, Lng: 2.3234},
	"q26": {Lat: 48.8566, Lng: 2.3146},
	"q27": {Lat: 48.8545, Lng: 2.3021},
	"q28": {Lat: 48.8605, Lng: 2.3036},
	"q29": {Lat: 48.8698, Lng: 2.3075},
	"q30": {Lat: 48.8768, Lng: 2.3012},
	"q31": {Lat: 48.8711, Lng: 2.3238},
	"q32": {Lat: 48.8789, Lng: 2.3245},
	"q33": {Lat: 48.8796, Lng: 2.3356},
	"q34": {Lat: 48.8729, Lng: 2.3336},
	"q35": {Lat: 48.8752, Lng: 2.3442},
	"q36": {Lat: 48.8814, Lng: 2.3487},
	"q37": {Lat: 48.8796, Lng: 2.3556},
	"q38": {Lat: 48.8696, Lng: 2.3549},
	"q39": {Lat: 48.8674, Lng: 2.3622},
	"q40": {Lat: 48.8742, Lng: 2.3686},
	"q41": {Lat: 48.8652, Lng: 2.3734},
	"q42": {Lat: 48.8608, Lng: 2.3789},
	"q43": {Lat: 48.8567, Lng: 2.3834},
	"q44": {Lat: 48.8518, Lng: 2.3912},
	"q45": {Lat: 48.8398, Lng: 2.4012},
	"q46": {Lat: 48.8432, Lng: 2.4134},
	"q47": {Lat: 48.8312, Lng: 2.3867},
	"q48": {Lat: 48.8456, Lng: 2.3756},
	"q49": {Lat: 48.8356, Lng: 2.3612},
	"q50": {Lat: 48.8289, Lng: 2.3698},
	"q51": {Lat: 48.8198, Lng: 2.3578},
	"q52": {Lat: 48.8365, Lng: 2.3498},
	"q53": {Lat: 48.8421, Lng: 2.3234},
	"q54": {Lat: 48.8198, Lng: 2.3367},
	"q55": {Lat: 48.8267, Lng: 2.3234},
	"q56": {Lat: 48.8312, Lng: 2.3098},
	"q57": {Lat: 48.8345, Lng: 2.2978},
	"q58": {Lat: 48.8456, Lng: 2.3145},
	"q59": {Lat: 48.8489, Lng: 2.2934},
	"q60": {Lat: 48.8356, Lng: 2.2756},
	"q61": {Lat: 48.8512, Lng: 2.2634},
	"q62": {Lat: 48.8598, Lng: 2.2712},
	"q63": {Lat: 48.8712, Lng: 2.2745},
	"q64": {Lat: 48.8634, Lng: 2.2889},
	"q65": {Lat: 48.8798, Lng: 2.2978},
	"q66": {Lat: 48.8834, Lng: 2.3089},
	"q67": {Lat: 48.8889, Lng: 2.3178},
	"q68": {Lat: 48.8934, Lng: 2.3267},
	"q69": {Lat: 48.8912, Lng: 2.3389},
	"q70": {Lat: 48.8956, Lng: 2.3456},
	"q71": {Lat: 48.8867, Lng: 2.3567},
	"q72": {Lat: 48.8923, Lng: 2.3623},
	"q73": {Lat: 48.8934, Lng: 2.3856},
	"q74": {Lat: 48.8989, Lng: 2.3934},
	"q75": {Lat: 48.8834, Lng: 2.3989},
	"q76": {Lat: 48.8756, Lng: 2.3834},
	"q77": {Lat: 48.8712, Lng: 2.3923},
	"q78": {Lat: 48.8712, Lng: 2.4078},
	"q79": {Lat: 48.8612, Lng: 2.3989},
	"q80": {Lat: 48.8534, Lng: 2.4034},
}

// UnitCenter возвращает центр округа по коду (или id)
func UnitCenter(key string) (domain.LatLng, bool) {
	c, ok := unitCenters[key]
	return c, ok
}

// DistrictCenter возвращает координаты квартала по id
func DistrictCenter(id string) (domain.LatLng, bool) {
	c, ok := districtCenters[id]
	return c, ok
}
