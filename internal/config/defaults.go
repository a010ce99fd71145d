package config

// Defaults returns the built-in configuration. Every table here can be
// replaced through the YAML config file.
func Defaults() *Config {
	return &Config{
		BaseDir:         ".",
		ResourceFile:    "Localizable.strings",
		LocaleDirSuffix: ".lproj",
		MasterLocale:    "en",
		Locales: []string{
			"zh-Hans", "zh-Hant", "es", "fr", "de", "ja", "ko",
			"pt", "ru", "it", "nl", "sv", "nb", "da", "pl", "tr",
			"ar", "fi", "hi",
		},
		Translations: map[string]map[string]string{
			"tag.search.placeholder": {
				"zh-Hans": "搜索标签...",
				"zh-Hant": "搜尋標籤...",
				"ja":      "タグを検索...",
				"ko":      "태그 검색...",
				"es":      "Buscar etiquetas...",
				"fr":      "Rechercher des tags...",
				"de":      "Tags suchen...",
				"pt":      "Pesquisar tags...",
				"ru":      "Поиск тегов...",
				"it":      "Cerca tag...",
				"nl":      "Zoek tags...",
				"sv":      "Sök taggar...",
				"nb":      "Søk etter tagger...",
				"da":      "Søg efter tags...",
				"pl":      "Szukaj tagów...",
				"tr":      "Etiket ara...",
				"ar":      "البحث عن العلامات...",
				"fi":      "Hae tageja...",
				"hi":      "टैग खोजें...",
			},
			"tag.name.placeholder": {
				"zh-Hans": "标签名称",
				"zh-Hant": "標籤名稱",
				"ja":      "タグ名",
				"ko":      "태그 이름",
				"es":      "Nombre de etiqueta",
				"fr":      "Nom du tag",
				"de":      "Tag-Name",
				"pt":      "Nome da tag",
				"ru":      "Название тега",
				"it":      "Nome tag",
				"nl":      "Tag naam",
				"sv":      "Taggnamn",
				"nb":      "Taggnavn",
				"da":      "Tag navn",
				"pl":      "Nazwa tagu",
				"tr":      "Etiket adı",
				"ar":      "اسم العلامة",
				"fi":      "Tagin nimi",
				"hi":      "टैग का नाम",
			},
		},
		EnglishIndicators: []string{
			"Clear iCloud Data", "Clear All Local Data",
			"Remove Duplicate", "Developer Tools",
			"Operation Complete", "Validation Error",
			"Processing", "Stopping recording",
			"Search tags...", "Tag name",
			"New Tag", "Cancel", "Add", "Remove",
		},
		Audit: AuditConfig{
			SourceExts:            []string{".swift"},
			ExcludePathSubstrings: []string{"Preview"},
			LocalizedCall:         "NSLocalizedString",
			Rules: []AuditRule{
				{Pattern: `Text\s*\(\s*"([^"]+)"\s*\)`, Kind: "Text"},
				{Pattern: `Text\s*\(\s*"([^"]+)"[^)]*\)`, Kind: "Text with modifiers"},
				{Pattern: `Button\s*\(\s*"([^"]+)"\s*\)`, Kind: "Button label"},
				{Pattern: `Button\s*\(\s*"([^"]+)"[^{]*\{`, Kind: "Button with action"},
				{Pattern: `Label\s*\(\s*"([^"]+)"`, Kind: "Label"},
				{Pattern: `\.navigationTitle\s*\(\s*"([^"]+)"\s*\)`, Kind: "Navigation title"},
				{Pattern: `\.navigationBarTitle\s*\(\s*"([^"]+)"\s*\)`, Kind: "Navigation bar title"},
				{Pattern: `\.alert\s*\(\s*"([^"]+)"`, Kind: "Alert title"},
				{Pattern: `\.confirmationDialog\s*\(\s*"([^"]+)"`, Kind: "Confirmation dialog"},
				{Pattern: `TextField\s*\(\s*"([^"]+)"`, Kind: "TextField placeholder"},
				{Pattern: `SecureField\s*\(\s*"([^"]+)"`, Kind: "SecureField placeholder"},
				{Pattern: `header:\s*\{\s*Text\s*\(\s*"([^"]+)"\s*\)`, Kind: "Section header"},
				{Pattern: `footer:\s*\{\s*Text\s*\(\s*"([^"]+)"\s*\)`, Kind: "Section footer"},
				{Pattern: `Picker\s*\(\s*"([^"]+)"`, Kind: "Picker label"},
				{Pattern: `Menu\s*\(\s*"([^"]+)"`, Kind: "Menu label"},
				{Pattern: `\.tabItem\s*\{[^}]*Label\s*\(\s*"([^"]+)"`, Kind: "Tab item"},
				{Pattern: `\.accessibilityLabel\s*\(\s*"([^"]+)"\s*\)`, Kind: "Accessibility label"},
				{Pattern: `\.accessibilityHint\s*\(\s*"([^"]+)"\s*\)`, Kind: "Accessibility hint"},
				{Pattern: `fatalError\s*\(\s*"([^"]+)"\s*\)`, Kind: "Fatal error"},
			},
			SkipPatterns: []string{
				`^print\(`,
				`^debugPrint\(`,
				`^NSLog\(`,
				`//.*"`,
				`case\s+"`,
				`\.systemName:\s*"`,
				`Image\(systemName:\s*"`,
				`\.foregroundColor\(`,
				`\.font\(`,
				`DateFormatter`,
				`NumberFormatter`,
			},
			AllowShort: []string{"OK", "No"},
			SlugPrefix: "ui.",
			SlugMaxLen: 30,
		},
	}
}
