package rdw

import "sort"

// columnTranslations maps the dataset's Dutch field names to the canonical
// English names used everywhere downstream. Fields missing from this table
// pass through untranslated.
var columnTranslations = map[string]string{
	"kenteken":                  "license_plate",
	"voertuigsoort":             "vehicle_type",
	"merk":                      "make",
	"handelsbenaming":           "commercial_name",
	"vervaldatum_apk":           "inspection_expiry_date",
	"datum_tenaamstelling":      "registration_date",
	"bruto_bpm":                 "gross_bpm",
	"inrichting":                "body_style",
	"aantal_zitplaatsen":        "seat_count",
	"eerste_kleur":              "primary_color",
	"tweede_kleur":              "secondary_color",
	"aantal_cilinders":          "cylinder_count",
	"cilinderinhoud":            "engine_displacement_cc",
	"massa_ledig_voertuig":      "curb_weight_kg",
	"toegestane_maximum_massa_voertuig":        "max_authorized_mass_kg",
	"massa_rijklaar":                           "ready_to_drive_mass_kg",
	"maximum_massa_trekken_ongeremd":           "max_unbraked_tow_mass_kg",
	"maximum_trekken_massa_geremd":             "max_braked_tow_mass_kg",
	"datum_eerste_toelating":                   "first_admission_date",
	"datum_eerste_tenaamstelling_in_nederland": "first_registration_nl_date",
	"wacht_op_keuren":                          "awaiting_inspection",
	"catalogusprijs":                           "list_price_eur",
	"wam_verzekerd":                            "liability_insured",
	"maximale_constructiesnelheid":             "design_speed_kmh",
	"laadvermogen":                             "payload_kg",
	"oplegger_geremd":                          "semi_trailer_braked_mass_kg",
	"aanhangwagen_autonoom_geremd":             "autonomous_trailer_braked_mass_kg",
	"aanhangwagen_middenas_geremd":             "central_axle_trailer_braked_mass_kg",
	"aantal_staanplaatsen":                     "standing_places",
	"aantal_deuren":                            "door_count",
	"aantal_wielen":                            "wheel_count",
	"afstand_hart_koppeling_tot_achterzijde_voertuig": "distance_coupling_to_rear_mm",
	"afstand_voorzijde_voertuig_tot_hart_koppeling":   "distance_front_to_coupling_mm",
	"afwijkende_maximum_snelheid":                     "alternate_max_speed_kmh",
	"lengte":                                 "length_cm",
	"breedte":                                "width_cm",
	"europese_voertuigcategorie":             "eu_vehicle_category",
	"europese_voertuigcategorie_toevoeging":  "eu_vehicle_category_addition",
	"europese_uitvoeringcategorie_toevoeging": "eu_variant_category_addition",
	"plaats_chassisnummer":                   "vin_location",
	"technische_max_massa_voertuig":          "technical_max_mass_kg",
	"type":                                   "type_code",
	"type_gasinstallatie":                    "gas_installation_type",
	"typegoedkeuringsnummer":                 "type_approval_number",
	"variant":                                "variant",
	"uitvoering":                             "trim",
	"volgnummer_wijziging_eu_typegoedkeuring": "eu_type_approval_revision",
	"vermogen_massarijklaar":                  "power_mass_ratio_kw_per_kg",
	"wielbasis":                               "wheelbase_cm",
	"export_indicator":                        "export_indicator",
	"openstaande_terugroepactie_indicator":    "open_recall_indicator",
	"vervaldatum_tachograaf":                  "tachograph_expiry_date",
	"taxi_indicator":                          "taxi_indicator",
	"maximum_massa_samenstelling":             "max_combination_mass_kg",
	"aantal_rolstoelplaatsen":                 "wheelchair_places",
	"maximum_ondersteunende_snelheid":         "max_assisted_speed_kmh",
	"jaar_laatste_registratie_tellerstand":    "last_odometer_year",
	"tellerstandoordeel":                      "odometer_judgement",
	"code_toelichting_tellerstandoordeel":     "odometer_judgement_code",
	"tenaamstellen_mogelijk":                  "registration_allowed",
	"vervaldatum_apk_dt":                      "inspection_expiry_datetime",
	"datum_tenaamstelling_dt":                 "registration_datetime",
	"datum_eerste_toelating_dt":               "first_admission_datetime",
	"datum_eerste_tenaamstelling_in_nederland_dt": "first_registration_nl_datetime",
	"vervaldatum_tachograaf_dt":                   "tachograph_expiry_datetime",
	"maximum_last_onder_de_vooras_sen_tezamen_koppeling": "max_front_axle_load_with_coupling_kg",
	"type_remsysteem_voertuig_code":                      "brake_system_code",
	"rupsonderstelconfiguratiecode":                      "tracked_chassis_configuration_code",
	"wielbasis_voertuig_minimum":                         "wheelbase_min_cm",
	"wielbasis_voertuig_maximum":                         "wheelbase_max_cm",
	"lengte_voertuig_minimum":                            "length_min_cm",
	"lengte_voertuig_maximum":                            "length_max_cm",
	"breedte_voertuig_minimum":                           "width_min_cm",
	"breedte_voertuig_maximum":                           "width_max_cm",
	"hoogte_voertuig":                                    "height_cm",
	"hoogte_voertuig_minimum":                            "height_min_cm",
	"hoogte_voertuig_maximum":                            "height_max_cm",
	"massa_bedrijfsklaar_minimaal":                       "operational_mass_min_kg",
	"massa_bedrijfsklaar_maximaal":                       "operational_mass_max_kg",
	"technisch_toelaatbaar_massa_koppelpunt":             "tech_permissible_coupling_mass_kg",
	"maximum_massa_technisch_maximaal":                   "technical_mass_max_kg",
	"maximum_massa_technisch_minimaal":                   "technical_mass_min_kg",
	"subcategorie_nederland":                             "dutch_subcategory",
	"verticale_belasting_koppelpunt_getrokken_voertuig":  "vertical_load_tow_point_kg",
	"zuinigheidsclassificatie":                           "efficiency_class",
	"registratie_datum_goedkeuring_afschrijvingsmoment_bpm":    "bpm_depreciation_approval_date",
	"registratie_datum_goedkeuring_afschrijvingsmoment_bpm_dt": "bpm_depreciation_approval_datetime",
	"gem_lading_wrde":                       "avg_load_value",
	"aerodyn_voorz":                         "aerodynamic_features",
	"massa_alt_aandr":                       "alternative_drivetrain_mass_kg",
	"verl_cab_ind":                          "extended_cabin_indicator",
	"aantal_passagiers_zitplaatsen_wettelijk": "legal_passenger_seats",
	"aanwijzingsnummer":                       "designation_number",
	"api_gekentekende_voertuigen_assen":       "api_axles_endpoint",
	"api_gekentekende_voertuigen_brandstof":   "api_fuel_endpoint",
	"api_gekentekende_voertuigen_carrosserie": "api_bodywork_endpoint",
	"api_gekentekende_voertuigen_carrosserie_specifiek": "api_bodywork_specific_endpoint",
	"api_gekentekende_voertuigen_voertuigklasse":        "api_vehicle_class_endpoint",
}

// CategoryTranslations maps Dutch vehicle category names (voertuigsoort)
// to English display names.
var CategoryTranslations = map[string]string{
	"Aanhangwagen":                          "Trailer",
	"Autonome aanhangwagen":                 "Autonomous trailer",
	"Bedrijfsauto":                          "Commercial vehicle",
	"Bromfiets":                             "Moped",
	"Bus":                                   "Bus",
	"Driewielig motorrijtuig":               "Three-wheeled motor vehicle",
	"Land- of bosb aanhw of getr uitr stuk": "Agricultural or forestry trailer or towed equipment",
	"Land- of bosbouwtrekker":               "Agricultural or forestry tractor",
	"Middenasaanhangwagen":                  "Central axle trailer",
	"Mobiele machine":                       "Mobile machine",
	"Motorfiets":                            "Motorcycle",
	"Motorfiets met zijspan":                "Motorcycle with sidecar",
	"Motorrijtuig met beperkte snelheid":    "Limited speed motor vehicle",
	"Oplegger":                              "Semi-trailer",
	"Personenauto":                          "Passenger car",
}

// valueTranslations covers the Dutch literals the dataset uses for
// boolean-ish indicators, "unknown/not applicable" phrases and the
// vehicle category names. Anything not listed passes through unchanged.
var valueTranslations = map[string]string{
	"Ja":  "Yes",
	"Nee": "No",
	"ja":  "Yes",
	"nee": "No",
	"JA":  "Yes",
	"NEE": "No",

	"Niet geregistreerd":   "Not registered",
	"Niet van toepassing":  "Not applicable",
	"Onbekend":             "Unknown",
	"Leeg":                 "Empty",
	"Niet beschikbaar":     "Not available",
	"Niet opgegeven":       "Not specified",
	"Niet bekend":          "Not known",
	"Niet ingevuld":        "Not filled in",
	"Niet vermeld":         "Not mentioned",
	"Niet opgenomen":       "Not included",

	"Aanhangwagen":                          "Trailer",
	"Autonome aanhangwagen":                 "Autonomous trailer",
	"Bedrijfsauto":                          "Commercial vehicle",
	"Bromfiets":                             "Moped",
	"Bus":                                   "Bus",
	"Driewielig motorrijtuig":               "Three-wheeled motor vehicle",
	"Land- of bosb aanhw of getr uitr stuk": "Agricultural or forestry trailer or towed equipment",
	"Land- of bosbouwtrekker":               "Agricultural or forestry tractor",
	"Middenasaanhangwagen":                  "Central axle trailer",
	"Mobiele machine":                       "Mobile machine",
	"Motorfiets":                            "Motorcycle",
	"Motorfiets met zijspan":                "Motorcycle with sidecar",
	"Motorrijtuig met beperkte snelheid":    "Limited speed motor vehicle",
	"Oplegger":                              "Semi-trailer",
	"Personenauto":                          "Passenger car",
}

// TurkishColumnLabels maps canonical field names to Turkish display labels.
// Presentation only, never consulted during translation.
var TurkishColumnLabels = map[string]string{
	"alternate_max_speed_kmh":             "Alternatif Maksimum Hız (km/h)",
	"autonomous_trailer_braked_mass_kg":   "Otonom Römork Frenli Ağırlık (kg)",
	"awaiting_inspection":                 "Muayene Bekliyor",
	"body_style":                          "Karoseri",
	"central_axle_trailer_braked_mass_kg": "Merkezi Aks Römork Frenli Ağırlık (kg)",
	"commercial_name":                     "Ticari Ad",
	"curb_weight_kg":                      "Boş Ağırlık (kg)",
	"cylinder_count":                      "Silindir Sayısı",
	"design_speed_kmh":                    "Tasarım Hızı (km/h)",
	"distance_coupling_to_rear_mm":        "Çeki Demiri-Arka Mesafe (mm)",
	"distance_front_to_coupling_mm":       "Ön-Çeki Demiri Mesafe (mm)",
	"door_count":                          "Kapı Sayısı",
	"engine_displacement_cc":              "Motor Hacmi (cc)",
	"eu_vehicle_category":                 "AB Araç Kategorisi",
	"eu_vehicle_category_addition":        "AB Araç Kategorisi Eki",
	"eu_variant_category_addition":        "AB Varyant Kategorisi Eki",
	"first_admission_date":                "İlk Kabul Tarihi",
	"first_registration_nl_date":          "Hollanda'da İlk Tescil Tarihi",
	"gas_installation_type":               "Gaz Tesisatı Tipi",
	"gross_bpm":                           "Brüt BPM",
	"inspection_expiry_date":              "Muayene Bitiş Tarihi",
	"length_cm":                           "Uzunluk (cm)",
	"liability_insured":                   "Sorumluluk Sigortalı",
	"license_plate":                       "Plaka",
	"list_price_eur":                      "Liste Fiyatı (EUR)",
	"make":                                "Marka",
	"max_authorized_mass_kg":              "Maksimum Yetkili Ağırlık (kg)",
	"max_braked_tow_mass_kg":              "Maksimum Frenli Çekme Ağırlığı (kg)",
	"max_unbraked_tow_mass_kg":            "Maksimum Frenlenmemiş Çekme Ağırlığı (kg)",
	"payload_kg":                          "Yük Kapasitesi (kg)",
	"primary_color":                       "Ana Renk",
	"ready_to_drive_mass_kg":              "Yolculuğa Hazır Ağırlık (kg)",
	"registration_date":                   "Tescil Tarihi",
	"secondary_color":                     "İkincil Renk",
	"seat_count":                          "Koltuk Sayısı",
	"semi_trailer_braked_mass_kg":         "Yarı Römork Frenli Ağırlık (kg)",
	"standing_places":                     "Ayakta Yolcu Yeri",
	"technical_max_mass_kg":               "Teknik Maksimum Ağırlık (kg)",
	"type_approval_number":                "Tip Onay Numarası",
	"type_code":                           "Tip Kodu",
	"variant":                             "Varyant",
	"vehicle_type":                        "Araç Tipi",
	"vin_location":                        "Şasi Numarası Konumu",
	"wheel_count":                         "Tekerlek Sayısı",
	"width_cm":                            "Genişlik (cm)",
	"trim":                                "Donanım",
	"eu_type_approval_revision":           "AB Tip Onay Revizyonu",
	"power_mass_ratio_kw_per_kg":          "Güç-Ağırlık Oranı (kW/kg)",
	"wheelbase_cm":                        "Dingil Mesafesi (cm)",
	"export_indicator":                    "İhracat Göstergesi",
	"open_recall_indicator":               "Açık Geri Çağırma Göstergesi",
	"tachograph_expiry_date":              "Takoğraf Bitiş Tarihi",
	"taxi_indicator":                      "Taksi Göstergesi",
	"max_combination_mass_kg":             "Maksimum Kombinasyon Ağırlığı (kg)",
	"wheelchair_places":                   "Tekerlekli Sandalye Yeri",
	"max_assisted_speed_kmh":              "Maksimum Yardımlı Hız (km/h)",
	"last_odometer_year":                  "Son Kilometre Sayacı Yılı",
	"odometer_judgement":                  "Kilometre Sayacı Değerlendirmesi",
	"odometer_judgement_code":             "Kilometre Sayacı Değerlendirme Kodu",
	"registration_allowed":                "Tescil İzni",
	"inspection_expiry_datetime":          "Muayene Bitiş Tarih Saati",
	"registration_datetime":               "Tescil Tarih Saati",
	"first_admission_datetime":            "İlk Kabul Tarih Saati",
	"first_registration_nl_datetime":      "Hollanda'da İlk Tescil Tarih Saati",
	"tachograph_expiry_datetime":          "Takoğraf Bitiş Tarih Saati",
	"max_front_axle_load_with_coupling_kg": "Maksimum Ön Aks Yükü Çeki Demiri ile (kg)",
	"brake_system_code":                    "Fren Sistemi Kodu",
	"tracked_chassis_configuration_code":   "Paletli Şasi Konfigürasyon Kodu",
	"wheelbase_min_cm":                     "Minimum Dingil Mesafesi (cm)",
	"wheelbase_max_cm":                     "Maksimum Dingil Mesafesi (cm)",
	"length_min_cm":                        "Minimum Uzunluk (cm)",
	"length_max_cm":                        "Maksimum Uzunluk (cm)",
	"width_min_cm":                         "Minimum Genişlik (cm)",
	"width_max_cm":                         "Maksimum Genişlik (cm)",
	"height_cm":                            "Yükseklik (cm)",
	"height_min_cm":                        "Minimum Yükseklik (cm)",
	"height_max_cm":                        "Maksimum Yükseklik (cm)",
	"operational_mass_min_kg":              "Minimum İşletme Ağırlığı (kg)",
	"operational_mass_max_kg":              "Maksimum İşletme Ağırlığı (kg)",
	"tech_permissible_coupling_mass_kg":    "Teknik İzin Verilen Çeki Demiri Ağırlığı (kg)",
	"technical_mass_max_kg":                "Teknik Ağırlık Maksimum (kg)",
	"technical_mass_min_kg":                "Teknik Ağırlık Minimum (kg)",
	"dutch_subcategory":                    "Hollanda Alt Kategorisi",
	"vertical_load_tow_point_kg":           "Dikey Yük Çeki Noktası (kg)",
	"efficiency_class":                     "Verimlilik Sınıfı",
	"bpm_depreciation_approval_date":       "BPM Amortisman Onay Tarihi",
	"bpm_depreciation_approval_datetime":   "BPM Amortisman Onay Tarih Saati",
	"avg_load_value":                       "Ortalama Yük Değeri",
	"aerodynamic_features":                 "Aerodinamik Özellikler",
	"alternative_drivetrain_mass_kg":       "Alternatif Güç Aktarım Ağırlığı (kg)",
	"extended_cabin_indicator":             "Genişletilmiş Kabin Göstergesi",
	"legal_passenger_seats":                "Yasal Yolcu Koltukları",
	"designation_number":                   "Atama Numarası",
	"api_axles_endpoint":                   "API Akslar Uç Noktası",
	"api_fuel_endpoint":                    "API Yakıt Uç Noktası",
	"api_bodywork_endpoint":                "API Karoseri Uç Noktası",
	"api_bodywork_specific_endpoint":       "API Karoseri Özel Uç Noktası",
	"api_vehicle_class_endpoint":           "API Araç Sınıfı Uç Noktası",
}

// CSVFieldNames is the full canonical vocabulary in alphabetical order,
// used as the column set for CSV and spreadsheet export.
var CSVFieldNames = func() []string {
	names := make([]string, 0, len(columnTranslations))
	for _, english := range columnTranslations {
		names = append(names, english)
	}
	sort.Strings(names)
	return names
}()

// ColumnTranslations returns a copy of the Dutch → English field name table.
func ColumnTranslations() map[string]string {
	out := make(map[string]string, len(columnTranslations))
	for k, v := range columnTranslations {
		out[k] = v
	}
	return out
}

// CategoryToDutch resolves an English category display name back to the
// Dutch name the dataset filters on. Unknown names are returned as given.
func CategoryToDutch(english string) string {
	for dutch, en := range CategoryTranslations {
		if en == english {
			return dutch
		}
	}
	return english
}
