package workcalendar

// Default returns the hand-maintained 2025-2026 Hungarian table: fixed and
// moveable national holidays (pre-resolved, nothing is computed here) and the
// compensatory Saturdays that pay for the bridged rest days. Regenerated
// yearly from the official decree; deployments can override it with a YAML
// file instead of a rebuild.
func Default() *Calendar {
	holidays := map[string]string{
		"2025-01-01": "Újév",
		"2025-03-15": "Nemzeti ünnep",
		"2025-04-18": "Nagypéntek",
		"2025-04-20": "Húsvét",
		"2025-04-21": "Húsvét",
		"2025-05-01": "Munka ünnepe",
		"2025-05-02": "Pihenőnap",
		"2025-06-08": "Pünkösd",
		"2025-06-09": "Pünkösd",
		"2025-08-20": "Aug. 20",
		"2025-10-23": "Okt. 23",
		"2025-10-24": "Pihenőnap",
		"2025-11-01": "Mindenszentek",
		"2025-12-24": "Szenteste",
		"2025-12-25": "Karácsony",
		"2025-12-26": "Karácsony",

		"2026-01-01": "Újév",
		"2026-01-02": "Pihenőnap",
		"2026-03-15": "Nemzeti ünnep",
		"2026-04-03": "Nagypéntek",
		"2026-04-05": "Húsvét",
		"2026-04-06": "Húsvét",
		"2026-05-01": "Munka ünnepe",
		"2026-05-24": "Pünkösd",
		"2026-05-25": "Pünkösd",
		"2026-08-20": "Aug. 20",
		"2026-08-21": "Pihenőnap",
		"2026-10-23": "Okt. 23",
		"2026-11-01": "Mindenszentek",
		"2026-12-24": "Szenteste",
		"2026-12-25": "Karácsony",
		"2026-12-26": "Karácsony",
	}

	workdays := map[string]string{
		"2025-05-17": "Május 2. helyett",
		"2025-10-18": "Október 24. helyett",
		"2025-12-13": "December 24. helyett",
		"2026-01-10": "Január 2. helyett",
		"2026-08-29": "Augusztus 21. helyett",
	}

	return New(holidays, workdays)
}
