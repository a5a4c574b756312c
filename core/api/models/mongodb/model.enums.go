// Package models - các model MongoDB của hệ thống chăm sóc khách hàng.
package models

// Các giá trị hợp lệ cho site (địa điểm làm việc)
const (
	SiteArima       = "arima"
	SiteContactC    = "contactc"
	SiteDeveloper   = "developer"
	SiteChaguanas   = "chaguanas"
	SitePortOfSpain = "port-of-spain"
	SiteSando       = "sando"
	SiteTobago      = "tobago"
	SiteBackOffice  = "backoffice"
)

// Các giá trị hợp lệ cho department (bộ phận)
const (
	DeptCare        = "care"
	DeptDevelopment = "development"
	DeptDispatch    = "dispatch"
	DeptEscalations = "escalations"
	DeptHelpdesk    = "helpdesk"
	DeptRetail      = "retail"
	DeptSales       = "sales"
)

// Các giá trị hợp lệ cho position (chức danh)
const (
	PositionCSR         = "csr"
	PositionDeveloper   = "developer"
	PositionDispatcher  = "dispatcher"
	PositionEscalations = "escalations"
	PositionHelpdesk    = "helpdesk"
	PositionManager     = "manager"
	PositionSupervisor  = "supervisor"
)

// Các giá trị hợp lệ cho line of business (nhóm dịch vụ)
const (
	LobCare     = "care"
	LobInternet = "internet"
	LobLandline = "landline"
	LobMobile   = "mobile"
	LobVideo    = "video"
)

// Các giá trị hợp lệ cho loại số điện thoại
const (
	PhoneHome   = "home"
	PhoneMobile = "mobile"
	PhoneOffice = "office"
)

// Các giá trị hợp lệ cho kênh tương tác
const (
	ChannelChat   = "chat"
	ChannelEmail  = "email"
	ChannelPhone  = "phone"
	ChannelSocial = "social"
	ChannelWalkin = "walkin"
)

// Các giá trị hợp lệ cho loại action request
const (
	RequestCallback      = "callback"
	RequestResolution    = "resolution"
	RequestModification  = "modification"
	RequestInvestigation = "investigation"
)

// Các giá trị hợp lệ cho trạng thái case / action request
const (
	StatusOpen      = "open"
	StatusResolving = "resolving"
	StatusEscalated = "escalated"
	StatusClosed    = "closed"
)

// Danh sách giá trị hợp lệ, dùng khi cần kiểm tra ngoài validator
var (
	Sites        = []string{SiteArima, SiteContactC, SiteDeveloper, SiteChaguanas, SitePortOfSpain, SiteSando, SiteTobago, SiteBackOffice}
	Departments  = []string{DeptCare, DeptDevelopment, DeptDispatch, DeptEscalations, DeptHelpdesk, DeptRetail, DeptSales}
	Positions    = []string{PositionCSR, PositionDeveloper, PositionDispatcher, PositionEscalations, PositionHelpdesk, PositionManager, PositionSupervisor}
	Lobs         = []string{LobCare, LobInternet, LobLandline, LobMobile, LobVideo}
	PhoneTypes   = []string{PhoneHome, PhoneMobile, PhoneOffice}
	Channels     = []string{ChannelChat, ChannelEmail, ChannelPhone, ChannelSocial, ChannelWalkin}
	RequestTypes = []string{RequestCallback, RequestResolution, RequestModification, RequestInvestigation}
	Statuses     = []string{StatusOpen, StatusResolving, StatusEscalated, StatusClosed}
)

// IsValidEnum kiểm tra value có nằm trong danh sách giá trị hợp lệ không
func IsValidEnum(value string, allowed []string) bool {
	for _, v := range allowed {
		if v == value {
			return true
		}
	}
	return false
}
