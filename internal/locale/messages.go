package locale

// Key names a user-facing message.
type Key string

const (
	MsgAppTitle         Key = "app_title"
	MsgSelectDevices    Key = "select_devices"
	MsgLoadingDevices   Key = "loading_devices"
	MsgFoundDevices     Key = "found_devices"
	MsgNoDevices        Key = "no_devices"
	MsgRegistryAccess   Key = "registry_access_failed"
	MsgErrorLoading     Key = "error_loading_devices"
	MsgSelectAtLeastOne Key = "select_at_least_one"
	MsgSavePrompt       Key = "save_prompt"
	MsgGenerating       Key = "generating"
	MsgGenerated        Key = "generated"
	MsgSaveFailed       Key = "save_failed"
	MsgAskCreateTask    Key = "ask_create_task"
	MsgTaskCreated      Key = "task_created"
	MsgTaskCreateFailed Key = "task_create_failed"
	MsgAskRunNow        Key = "ask_run_now"
	MsgTaskStarted      Key = "task_started"
	MsgTaskStartFailed  Key = "task_start_failed"
	MsgTaskRemoved      Key = "task_removed"
	MsgTaskRemoveFailed Key = "task_remove_failed"
	MsgAskApplyNow      Key = "ask_apply_now"
	MsgApplying         Key = "applying"
	MsgApplyFailed      Key = "apply_failed"
	MsgNotElevated      Key = "not_elevated"
	MsgCancelled        Key = "cancelled"
	MsgSelectedCount    Key = "selected_count"
	MsgColumnDevice     Key = "column_device"
	MsgColumnVendor     Key = "column_vendor"
	MsgColumnInstance   Key = "column_instance"
	MsgHelpUp           Key = "help_up"
	MsgHelpDown         Key = "help_down"
	MsgHelpToggle       Key = "help_toggle"
	MsgHelpToggleAll    Key = "help_toggle_all"
	MsgHelpRefresh      Key = "help_refresh"
	MsgHelpConfirm      Key = "help_confirm"
	MsgHelpLanguage     Key = "help_language"
	MsgHelpQuit         Key = "help_quit"

	// history, inspect and task show output
	MsgNoHistory          Key = "no_history"
	MsgHistoryFiles       Key = "history_files"
	MsgHistoryActions     Key = "history_actions"
	MsgNone               Key = "none"
	MsgLabelID            Key = "label_id"
	MsgLabelRun           Key = "label_run"
	MsgLabelFile          Key = "label_file"
	MsgLabelWritten       Key = "label_written"
	MsgLabelSize          Key = "label_size"
	MsgLabelName          Key = "label_name"
	MsgLabelFolder        Key = "label_folder"
	MsgLabelAction        Key = "label_action"
	MsgColumnKey          Key = "column_key"
	MsgColumnWhen         Key = "column_when"
	MsgColumnDevices      Key = "column_devices"
	MsgColumnSize         Key = "column_size"
	MsgColumnFile         Key = "column_file"
	MsgColumnAction       Key = "column_action"
	MsgColumnStatus       Key = "column_status"
	MsgColumnTask         Key = "column_task"
	MsgColumnDetail       Key = "column_detail"
	MsgColumnCapabilities Key = "column_capabilities"
	MsgKeyCount           Key = "key_count"
	MsgHiddenCount        Key = "hidden_count"
)

var catalogs = map[Locale]map[Key]string{
	English: {
		MsgAppTitle:         "Nomoject - Device Manager",
		MsgSelectDevices:    "Select devices to hide from Eject popup",
		MsgLoadingDevices:   "Loading devices...",
		MsgFoundDevices:     "Found %d removable device(s)",
		MsgNoDevices:        "No removable devices found.",
		MsgRegistryAccess:   "Failed to access registry: %s",
		MsgErrorLoading:     "Error loading devices",
		MsgSelectAtLeastOne: "Please select at least one device.",
		MsgSavePrompt:       "Save registry file as",
		MsgGenerating:       "Generating registry file...",
		MsgGenerated:        "Registry file generated successfully: %s",
		MsgSaveFailed:       "Failed to save registry file: %s",
		MsgAskCreateTask:    "Would you like to create a startup task to apply it automatically",
		MsgTaskCreated:      "Startup task created successfully. The registry changes will be applied automatically at system startup.",
		MsgTaskCreateFailed: "Failed to create startup task: %s",
		MsgAskRunNow:        "Would you like to run the task now",
		MsgTaskStarted:      "Task started",
		MsgTaskStartFailed:  "Failed to start task: %s",
		MsgTaskRemoved:      "Startup task removed",
		MsgTaskRemoveFailed: "Failed to remove startup task: %s",
		MsgAskApplyNow:      "Would you like to apply the registry changes now",
		MsgApplying:         "Applying registry changes...",
		MsgApplyFailed:      "Failed to apply registry changes: %s",
		MsgNotElevated:      "This operation requires administrator privileges.",
		MsgCancelled:        "Cancelled.",
		MsgSelectedCount:    "%d of %d selected",
		MsgColumnDevice:     "DEVICE",
		MsgColumnVendor:     "VENDOR KEY",
		MsgColumnInstance:   "INSTANCE",
		MsgHelpUp:           "up",
		MsgHelpDown:         "down",
		MsgHelpToggle:       "toggle",
		MsgHelpToggleAll:    "toggle all",
		MsgHelpRefresh:      "refresh",
		MsgHelpConfirm:      "generate",
		MsgHelpLanguage:     "language",
		MsgHelpQuit:         "quit",

		MsgNoHistory:          "No history recorded yet.",
		MsgHistoryFiles:       "Registry Files",
		MsgHistoryActions:     "Task Actions",
		MsgNone:               "none",
		MsgLabelID:            "ID",
		MsgLabelRun:           "Run",
		MsgLabelFile:          "File",
		MsgLabelWritten:       "Written",
		MsgLabelSize:          "Size",
		MsgLabelName:          "Name",
		MsgLabelFolder:        "Folder",
		MsgLabelAction:        "Action",
		MsgColumnKey:          "KEY",
		MsgColumnWhen:         "WHEN",
		MsgColumnDevices:      "DEVICES",
		MsgColumnSize:         "SIZE",
		MsgColumnFile:         "FILE",
		MsgColumnAction:       "ACTION",
		MsgColumnStatus:       "STATUS",
		MsgColumnTask:         "TASK",
		MsgColumnDetail:       "DETAIL",
		MsgColumnCapabilities: "CAPABILITIES",
		MsgKeyCount:           "%d key(s)",
		MsgHiddenCount:        "%d hidden from the Eject menu",
	},
	PortugueseBR: {
		MsgAppTitle:         "Nomoject - Gerenciador de Dispositivos",
		MsgSelectDevices:    "Selecione os dispositivos para ocultar do popup de Ejetar",
		MsgLoadingDevices:   "Carregando dispositivos...",
		MsgFoundDevices:     "Encontrado(s) %d dispositivo(s) removível(is)",
		MsgNoDevices:        "Nenhum dispositivo removível encontrado.",
		MsgRegistryAccess:   "Falha ao acessar o registro: %s",
		MsgErrorLoading:     "Erro ao carregar dispositivos",
		MsgSelectAtLeastOne: "Por favor, selecione pelo menos um dispositivo.",
		MsgSavePrompt:       "Salvar arquivo de registro como",
		MsgGenerating:       "Gerando arquivo de registro...",
		MsgGenerated:        "Arquivo de registro gerado com sucesso: %s",
		MsgSaveFailed:       "Falha ao salvar arquivo de registro: %s",
		MsgAskCreateTask:    "Deseja criar uma tarefa de inicialização para aplicá-lo automaticamente",
		MsgTaskCreated:      "Tarefa de inicialização criada com sucesso. As alterações no registro serão aplicadas automaticamente na inicialização do sistema.",
		MsgTaskCreateFailed: "Falha ao criar tarefa de inicialização: %s",
		MsgAskRunNow:        "Deseja executar a tarefa agora",
		MsgTaskStarted:      "Tarefa iniciada",
		MsgTaskStartFailed:  "Falha ao iniciar a tarefa: %s",
		MsgTaskRemoved:      "Tarefa de inicialização removida",
		MsgTaskRemoveFailed: "Falha ao remover tarefa de inicialização: %s",
		MsgAskApplyNow:      "Deseja aplicar as alterações no registro agora",
		MsgApplying:         "Aplicando alterações no registro...",
		MsgApplyFailed:      "Falha ao aplicar alterações no registro: %s",
		MsgNotElevated:      "Esta operação requer privilégios de administrador.",
		MsgCancelled:        "Cancelado.",
		MsgSelectedCount:    "%d de %d selecionado(s)",
		MsgColumnDevice:     "DISPOSITIVO",
		MsgColumnVendor:     "CHAVE DO FABRICANTE",
		MsgColumnInstance:   "INSTÂNCIA",
		MsgHelpUp:           "subir",
		MsgHelpDown:         "descer",
		MsgHelpToggle:       "marcar",
		MsgHelpToggleAll:    "marcar todos",
		MsgHelpRefresh:      "atualizar",
		MsgHelpConfirm:      "gerar",
		MsgHelpLanguage:     "idioma",
		MsgHelpQuit:         "sair",

		MsgNoHistory:          "Nenhum histórico registrado ainda.",
		MsgHistoryFiles:       "Arquivos de Registro",
		MsgHistoryActions:     "Ações da Tarefa",
		MsgNone:               "nenhum",
		MsgLabelID:            "ID",
		MsgLabelRun:           "Execução",
		MsgLabelFile:          "Arquivo",
		MsgLabelWritten:       "Gravado",
		MsgLabelSize:          "Tamanho",
		MsgLabelName:          "Nome",
		MsgLabelFolder:        "Pasta",
		MsgLabelAction:        "Ação",
		MsgColumnKey:          "CHAVE",
		MsgColumnWhen:         "QUANDO",
		MsgColumnDevices:      "DISPOSITIVOS",
		MsgColumnSize:         "TAMANHO",
		MsgColumnFile:         "ARQUIVO",
		MsgColumnAction:       "AÇÃO",
		MsgColumnStatus:       "STATUS",
		MsgColumnTask:         "TAREFA",
		MsgColumnDetail:       "DETALHE",
		MsgColumnCapabilities: "CAPABILITIES",
		MsgKeyCount:           "%d chave(s)",
		MsgHiddenCount:        "%d oculto(s) do menu Ejetar",
	},
}
